package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ticketsla/ticketsla/internal/shared/biztime"
)

// Session binds a browser to a logged-in user until it expires or is destroyed.
type Session struct {
	ID        string
	UserID    uint
	Username  string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, username, ipAddress, userAgent string, ttl time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:        id,
		UserID:    userID,
		Username:  username,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return !biztime.NowUTC().Before(s.ExpiresAt)
}

// TTL is the time left before the session expires.
func (s *Session) TTL() time.Duration {
	return s.ExpiresAt.Sub(biztime.NowUTC())
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SessionRepository persists sessions in the database or Redis.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetByID returns a not found error when the session does not exist.
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	// DeleteExpired removes expired sessions and reports how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
