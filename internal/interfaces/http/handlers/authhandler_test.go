package handlers

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketsla/ticketsla/internal/application/user/usecases"
	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/infrastructure/metrics"
	"github.com/ticketsla/ticketsla/internal/infrastructure/template"
	"github.com/ticketsla/ticketsla/internal/interfaces/http/handlers/testutil"
	"github.com/ticketsla/ticketsla/internal/shared/config"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

var testCookie = config.CookieConfig{Name: "ticketsla_session", Path: "/", SameSite: "Lax"}

type authHandlerFixture struct {
	register *mockRegisterUC
	login    *mockLoginUC
	logout   *mockLogoutUC
	pages    *mockPages
	attempts *mockAttempts
	handler  *AuthHandler
}

func newAuthHandlerFixture() *authHandlerFixture {
	f := &authHandlerFixture{
		register: &mockRegisterUC{},
		login:    &mockLoginUC{},
		logout:   &mockLogoutUC{},
		pages:    &mockPages{},
		attempts: newMockAttempts(),
	}
	f.handler = NewAuthHandler(f.register, f.login, f.logout, f.pages, f.attempts, testCookie, logger.NewNopLogger())
	return f
}

func credentials(username, password string) url.Values {
	return url.Values{"username": {username}, "password": {password}}
}

func TestAuthHandler_ShowLogin(t *testing.T) {
	f := newAuthHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodGet, "/login")
	f.handler.ShowLogin(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, template.PageLogin, f.pages.name)
	assert.NotContains(t, f.pages.data, "notice")

	c, _ = testutil.NewTestContext(http.MethodGet, "/login?registered=1")
	f.handler.ShowLogin(c)
	assert.Equal(t, registeredNotice, f.pages.data["notice"])
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	f := newAuthHandlerFixture()
	f.login.result = &usecases.LoginResult{
		Session: &user.Session{ID: "sess-1", ExpiresAt: time.Now().Add(24 * time.Hour)},
		Token:   "signed-token",
	}

	c, w := testutil.NewFormContext("/login", credentials("alice", "correct-horse"))
	c.Request.Header.Set("User-Agent", "test-agent")
	f.handler.Login(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))
	assert.Equal(t, "alice", f.login.cmd.Username)
	assert.Equal(t, "correct-horse", f.login.cmd.Password)
	assert.Equal(t, "test-agent", f.login.cmd.UserAgent)

	cookie := testutil.FindCookie(w, testCookie.Name)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Greater(t, cookie.MaxAge, 0)

	assert.Equal(t, 1, f.attempts.logins[metrics.ResultSuccess])
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	f := newAuthHandlerFixture()
	f.login.err = errors.NewInvalidCredentialsError("Invalid username or password.")

	c, w := testutil.NewFormContext("/login", credentials("alice", "wrong-password"))
	f.handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, template.PageLogin, f.pages.name)
	assert.Equal(t, "Invalid username or password.", f.pages.data["error"])
	assert.Equal(t, "alice", f.pages.data["username"])
	assert.Nil(t, testutil.FindCookie(w, testCookie.Name))
	assert.Equal(t, 1, f.attempts.logins[metrics.ResultFailure])
}

func TestAuthHandler_LoginBlankForm(t *testing.T) {
	f := newAuthHandlerFixture()

	c, w := testutil.NewFormContext("/login", credentials("   ", ""))
	f.handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, f.login.called)
	assert.NotEmpty(t, f.pages.data["error"])
	assert.Equal(t, 1, f.attempts.logins[metrics.ResultRejected])
}

func TestAuthHandler_LoginStoreFailure(t *testing.T) {
	f := newAuthHandlerFixture()
	f.login.err = stderrors.New("database is locked")

	c, w := testutil.NewFormContext("/login", credentials("alice", "correct-horse"))
	f.handler.Login(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error occurred", f.pages.data["error"])
}

func TestAuthHandler_RegisterSuccess(t *testing.T) {
	f := newAuthHandlerFixture()

	c, w := testutil.NewFormContext("/register", credentials("alice", "correct-horse"))
	f.handler.Register(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?registered=1", w.Header().Get("Location"))
	assert.Equal(t, "alice", f.register.cmd.Username)
	assert.Equal(t, 1, f.attempts.registrations[metrics.ResultSuccess])
}

func TestAuthHandler_RegisterErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantResult string
	}{
		{"duplicate username", errors.NewDuplicateUserError("Username already exists."), http.StatusConflict, metrics.ResultRejected},
		{"weak password", errors.NewValidationError("password must be at least 8 characters long"), http.StatusBadRequest, metrics.ResultRejected},
		{"store failure", stderrors.New("disk full"), http.StatusInternalServerError, metrics.ResultFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthHandlerFixture()
			f.register.err = tt.err

			c, w := testutil.NewFormContext("/register", credentials("alice", "correct-horse"))
			f.handler.Register(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, template.PageRegister, f.pages.name)
			assert.NotEmpty(t, f.pages.data["error"])
			assert.Equal(t, 1, f.attempts.registrations[tt.wantResult])
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAuthHandlerFixture()

	c, w := testutil.NewTestContext(http.MethodGet, "/logout")
	testutil.SetSessionContext(c, 1, "alice", "sess-1")
	f.handler.Logout(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "sess-1", f.logout.cmd.SessionID)

	cookie := testutil.FindCookie(w, testCookie.Name)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthHandler_NilAttemptRecorder(t *testing.T) {
	login := &mockLoginUC{err: errors.NewInvalidCredentialsError("Invalid username or password.")}
	h := NewAuthHandler(&mockRegisterUC{}, login, &mockLogoutUC{}, &mockPages{}, nil, testCookie, logger.NewNopLogger())

	c, w := testutil.NewFormContext("/login", credentials("alice", "wrong-password"))
	assert.NotPanics(t, func() { h.Login(c) })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
