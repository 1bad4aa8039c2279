package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	DB       DBConfig
	Redis    RedisConfig
	Identity IdentityConfig
	Notify   NotifyConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig selects collaborator implementations once at process start.
// Per-call mock/real branching is deliberately not supported.
type BackendConfig struct {
	PMSMode      string `envconfig:"PMS_MODE" default:"memory"`      // memory | postgres
	IdentityMode string `envconfig:"IDENTITY_MODE" default:"mock"`   // mock | live
	NotifyMode   string `envconfig:"NOTIFY_MODE" default:"log"`      // log | mqtt
	SessionMode  string `envconfig:"SESSION_MODE" default:"memory"`  // memory | redis
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"hotel"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"hotel_pms"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type IdentityConfig struct {
	BaseURL string        `envconfig:"IDENTITY_BASE_URL" default:"http://localhost:9080"`
	APIKey  string        `envconfig:"IDENTITY_API_KEY" default:""`
	Timeout time.Duration `envconfig:"IDENTITY_TIMEOUT" default:"30s"`
}

type NotifyConfig struct {
	Broker      string `envconfig:"NOTIFY_MQTT_BROKER" default:"tcp://localhost:1883"`
	ClientID    string `envconfig:"NOTIFY_MQTT_CLIENT_ID" default:"front-desk"`
	Username    string `envconfig:"NOTIFY_MQTT_USERNAME" default:""`
	Password    string `envconfig:"NOTIFY_MQTT_PASSWORD" default:""`
	TopicPrefix string `envconfig:"NOTIFY_TOPIC_PREFIX" default:"hotel/staff"`
}

type SessionConfig struct {
	// TTL bounds how long a parked guest decision (reservation selection,
	// bill confirmation) stays valid before it is treated as abandoned.
	TTL time.Duration `envconfig:"SESSION_TTL" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			PMSMode:      "memory",
			IdentityMode: "mock",
			NotifyMode:   "log",
			SessionMode:  "memory",
		},
		Session: SessionConfig{
			TTL: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
	}
}
