package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/application/user/usecases"
	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/shared/config"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

// SessionAuthenticator resolves a session cookie to a live session.
type SessionAuthenticator interface {
	Execute(ctx context.Context, cmd usecases.AuthenticateCommand) (*user.Session, error)
}

type SessionMiddleware struct {
	authenticate SessionAuthenticator
	cookie       config.CookieConfig
	logger       logger.Interface
}

func NewSessionMiddleware(authenticate SessionAuthenticator, cookie config.CookieConfig, logger logger.Interface) *SessionMiddleware {
	return &SessionMiddleware{
		authenticate: authenticate,
		cookie:       cookie,
		logger:       logger,
	}
}

// RequireSession lets the request through only with a valid session cookie.
// Browsers are redirected to the login page; clients asking for JSON get 401.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c, m.cookie)

		session, err := m.authenticate.Execute(c.Request.Context(), usecases.AuthenticateCommand{Token: token})
		if err != nil {
			if !errors.IsNotAuthenticatedError(err) {
				// The session may still be valid; keep the cookie.
				m.logger.Errorw("failed to authenticate session", "error", err)
				m.fail(c)
				return
			}
			if token != "" {
				utils.ClearSessionCookie(c, m.cookie)
			}
			m.reject(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, session.UserID)
		c.Set(constants.ContextKeyUsername, session.Username)
		c.Set(constants.ContextKeySessionID, session.ID)

		c.Next()
	}
}

func (m *SessionMiddleware) reject(c *gin.Context, err error) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		utils.ErrorResponseWithError(c, err)
		c.Abort()
		return
	}
	c.Redirect(http.StatusSeeOther, constants.RouteLogin)
	c.Abort()
}

func (m *SessionMiddleware) fail(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
	} else {
		c.String(http.StatusInternalServerError, constants.ErrMsgInternalServerError)
	}
	c.Abort()
}
