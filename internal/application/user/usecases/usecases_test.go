package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type authFixture struct {
	users    *mockUserRepository
	sessions *mockSessionRepository
	hasher   *mockHasher
	tokens   *mockTokenService

	register     *RegisterUseCase
	login        *LoginUseCase
	logout       *LogoutUseCase
	authenticate *AuthenticateUseCase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    newMockUserRepository(),
		sessions: newMockSessionRepository(),
		hasher:   &mockHasher{},
		tokens:   &mockTokenService{},
	}
	log := logger.NewNopLogger()
	f.register = NewRegisterUseCase(f.users, f.hasher, log)
	f.login = NewLoginUseCase(f.users, f.sessions, f.hasher, f.tokens, 24*time.Hour, log)
	f.logout = NewLogoutUseCase(f.sessions, log)
	f.authenticate = NewAuthenticateUseCase(f.sessions, f.tokens, log)
	return f
}

func TestRegister(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	u, err := f.register.Execute(ctx, RegisterCommand{Username: "  alice ", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username().String())
	assert.Equal(t, uint(1), u.ID())
	assert.Equal(t, "hashed:correct-horse", u.PasswordHash())
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "another-pass"})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateUserError(err))
	assert.Len(t, f.users.users, 1)
}

func TestRegister_DuplicateFromStore(t *testing.T) {
	f := newAuthFixture()
	f.users.CreateFunc = func(context.Context, *user.User) error {
		return errors.NewDuplicateUserError("Username already exists.")
	}

	_, err := f.register.Execute(context.Background(), RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateUserError(err))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"blank username", "   ", "correct-horse"},
		{"username too long", strings.Repeat("a", 151), "correct-horse"},
		{"password too short", "alice", "short"},
		{"password over bcrypt limit", "alice", strings.Repeat("p", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			_, err := f.register.Execute(context.Background(), RegisterCommand{Username: tt.username, Password: tt.password})
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, f.users.users)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	result, err := f.login.Execute(ctx, LoginCommand{
		Username:  "alice",
		Password:  "correct-horse",
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Session)
	assert.Equal(t, "alice", result.Session.Username)
	assert.Equal(t, "10.0.0.1", result.Session.IPAddress)
	assert.Equal(t, "token:"+result.Session.ID, result.Token)
	assert.Contains(t, f.sessions.sessions, result.Session.ID)
	assert.Equal(t, 1, f.sessions.deleteExpiredCalls)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.Session.ExpiresAt, time.Minute)
}

func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, wrongPassword := f.login.Execute(ctx, LoginCommand{Username: "alice", Password: "wrong-password"})
	_, unknownUser := f.login.Execute(ctx, LoginCommand{Username: "bob", Password: "correct-horse"})
	_, blankUser := f.login.Execute(ctx, LoginCommand{Username: "", Password: "correct-horse"})

	for _, err := range []error{wrongPassword, unknownUser, blankUser} {
		require.Error(t, err)
		assert.True(t, errors.IsInvalidCredentialsError(err))
		assert.Equal(t, "Invalid username or password.", errors.GetAppError(err).Message)
	}

	assert.Equal(t, 2, f.hasher.dummyCalls, "unknown users still pay for a hash comparison")
	assert.Empty(t, f.sessions.sessions, "failed logins create no session")
}

func TestLogin_PurgesExpiredSessions(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	stale := &user.Session{ID: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)}
	f.sessions.sessions[stale.ID] = stale

	_, err = f.login.Execute(ctx, LoginCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotContains(t, f.sessions.sessions, "old")
	assert.Len(t, f.sessions.sessions, 1)
}

func TestLogin_PurgeFailureDoesNotBlockLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.sessions.DeleteExpiredFunc = func(context.Context) (int64, error) {
		return 0, stderrors.New("locked")
	}

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = f.login.Execute(ctx, LoginCommand{Username: "alice", Password: "correct-horse"})
	assert.NoError(t, err)
}

func TestLogin_SignFailureDiscardsSession(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.tokens.SignFunc = func(string, string, time.Time) (string, error) {
		return "", stderrors.New("no key")
	}

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = f.login.Execute(ctx, LoginCommand{Username: "alice", Password: "correct-horse"})
	require.Error(t, err)
	assert.Empty(t, f.sessions.sessions)
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	result, err := f.login.Execute(ctx, LoginCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	session, err := f.authenticate.Execute(ctx, AuthenticateCommand{Token: result.Token})
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, session.ID)
	assert.Equal(t, "alice", session.Username)
}

func TestAuthenticate_Rejects(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	expired := &user.Session{ID: "expired", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}
	f.sessions.sessions[expired.ID] = expired

	tests := []struct {
		name  string
		token string
	}{
		{"missing cookie", ""},
		{"forged cookie", "forged"},
		{"unknown session", "token:nope"},
		{"expired session", "token:expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.authenticate.Execute(ctx, AuthenticateCommand{Token: tt.token})
			require.Error(t, err)
			assert.True(t, errors.IsNotAuthenticatedError(err))
		})
	}

	assert.NotContains(t, f.sessions.sessions, "expired", "expired sessions are removed when seen")
}

func TestLogout(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	result, err := f.login.Execute(ctx, LoginCommand{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, f.logout.Execute(ctx, LogoutCommand{SessionID: result.Session.ID}))
	assert.Empty(t, f.sessions.sessions)

	_, err = f.authenticate.Execute(ctx, AuthenticateCommand{Token: result.Token})
	assert.True(t, errors.IsNotAuthenticatedError(err))

	err = f.logout.Execute(ctx, LogoutCommand{})
	assert.True(t, errors.IsNotAuthenticatedError(err))
}
