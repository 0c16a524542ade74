package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	apperrors "github.com/ticketsla/ticketsla/internal/shared/errors"
)

// mockUserRepository keeps users in a map keyed by username.
type mockUserRepository struct {
	users  map[string]*user.User
	nextID uint

	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*user.User{}}
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	if _, ok := m.users[u.Username().String()]; ok {
		return apperrors.NewDuplicateUserError("Username already exists.")
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.Username().String()] = u
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return m.users[username], nil
}

func (m *mockUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

func (m *mockUserRepository) Count(context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type mockSessionRepository struct {
	sessions map[string]*user.Session

	CreateFunc        func(ctx context.Context, s *user.Session) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)

	deleteExpiredCalls int
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: map[string]*user.Session{}}
}

func (m *mockSessionRepository) Create(ctx context.Context, s *user.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionRepository) GetByID(_ context.Context, sessionID string) (*user.Session, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (m *mockSessionRepository) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.deleteExpiredCalls++
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	var n int64
	for id, s := range m.sessions {
		if s.IsExpired() {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// mockHasher prefixes instead of hashing and counts dummy comparisons.
type mockHasher struct {
	dummyCalls int
}

func (h *mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (h *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (h *mockHasher) CompareDummy(string) { h.dummyCalls++ }

// mockTokenService uses "token:<session id>" as the signed value.
type mockTokenService struct {
	SignFunc func(sessionID, username string, expiresAt time.Time) (string, error)
}

func (m *mockTokenService) Sign(sessionID, username string, expiresAt time.Time) (string, error) {
	if m.SignFunc != nil {
		return m.SignFunc(sessionID, username, expiresAt)
	}
	return "token:" + sessionID, nil
}

func (m *mockTokenService) SessionID(token string) (string, error) {
	const prefix = "token:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.New("bad token")
	}
	return token[len(prefix):], nil
}
