package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mesaYaApi/internal/modules/identity/application/port"
	"mesaYaApi/internal/modules/identity/domain"
)

const (
	tokenKeyPrefix = "session:auth_token:"
	userKeyPrefix  = "session:user:"
)

// RedisSessionStore persists sessions in Redis under the same two-key layout
// the memory store uses: a TTL-bound token entry and the serialized identity.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(addr, password string, db int) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisSessionStore{client: client}, nil
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

func (s *RedisSessionStore) SaveToken(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKeyPrefix+sessionID, userID, ttl).Err(); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) LookupToken(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, tokenKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("lookup session token: %w", err)
	}
	return userID, nil
}

func (s *RedisSessionStore) DeleteToken(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, tokenKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) SaveUser(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.client.Set(ctx, userKeyPrefix+user.ID, payload, 0).Err(); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) LoadUser(ctx context.Context, userID string) (*domain.User, error) {
	payload, err := s.client.Get(ctx, userKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	user := &domain.User{}
	if err := json.Unmarshal(payload, user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return user, nil
}
