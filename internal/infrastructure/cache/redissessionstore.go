package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
)

const sessionKeyPrefix = "session:"

type sessionPayload struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisSessionStore keeps sessions as JSON values whose key TTL matches the
// session expiry, so Redis drops them on its own.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) user.SessionRepository {
	return &RedisSessionStore{client: client}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisSessionStore) Create(ctx context.Context, session *user.Session) error {
	ttl := session.TTL()
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(sessionPayload{
		ID:        session.ID,
		UserID:    session.UserID,
		Username:  session.Username,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var p sessionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &user.Session{
		ID:        p.ID,
		UserID:    p.UserID,
		Username:  p.Username,
		IPAddress: p.IPAddress,
		UserAgent: p.UserAgent,
		ExpiresAt: p.ExpiresAt.UTC(),
		CreatedAt: p.CreatedAt.UTC(),
	}, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: key TTLs already expire sessions.
func (s *RedisSessionStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
