package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the front-desk operator (a staff member or a
// kiosk agent identity) behind every /api route. The operator ends up on
// audit records as operatedBy.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxOperatorKey = "operator"
	ctxRoleKey     = "operator_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorKey, claims.Operator)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetOperator returns the authenticated operator identity from context.
func GetOperator(c *gin.Context) (string, bool) {
	operator, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	op, ok := operator.(string)
	return op, ok
}

// GetOperatorRole returns the authenticated operator role from context.
func GetOperatorRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
