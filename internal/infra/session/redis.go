package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/config"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/shared"
)

const keyPrefix = "frontdesk:session:"

// RedisStore persists sessions in Redis so multiple front-desk instances can
// serve the same conversation. Expiry is delegated to the key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*shared.FrontDeskSession, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &shared.FrontDeskSession{}, nil
		}
		return nil, errs.Wrap(err, "failed to load session")
	}

	var session shared.FrontDeskSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errs.Wrap(err, fmt.Sprintf("corrupt session payload for %s", sessionID))
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, session *shared.FrontDeskSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save session")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return errs.Wrap(err, "failed to clear session")
	}
	return nil
}
