package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/application/user/usecases"
	"github.com/ticketsla/ticketsla/internal/infrastructure/metrics"
	"github.com/ticketsla/ticketsla/internal/infrastructure/template"
	"github.com/ticketsla/ticketsla/internal/shared/config"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

const registeredNotice = "Registration successful. Please log in."

type credentialsForm struct {
	Username string `form:"username" validate:"required,notblank,max=150"`
	Password string `form:"password" validate:"required"`
}

type AuthHandler struct {
	registerUC RegisterExecutor
	loginUC    LoginExecutor
	logoutUC   LogoutExecutor
	pages      PageRenderer
	attempts   AttemptRecorder
	cookie     config.CookieConfig
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC RegisterExecutor,
	loginUC LoginExecutor,
	logoutUC LogoutExecutor,
	pages PageRenderer,
	attempts AttemptRecorder,
	cookie config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
		pages:      pages,
		attempts:   attempts,
		cookie:     cookie,
		logger:     logger,
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	data := pongo2.Context{}
	if c.Query("registered") != "" {
		data["notice"] = registeredNotice
	}
	h.pages.HTML(c, http.StatusOK, template.PageLogin, data)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid login form", "error", err)
	}

	if err := utils.ValidateStruct(&form); err != nil {
		h.recordLogin(metrics.ResultRejected)
		h.renderForm(c, template.PageLogin, form.Username, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  form.Username,
		Password:  form.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		if errors.IsInvalidCredentialsError(err) {
			h.recordLogin(metrics.ResultFailure)
		} else {
			h.logger.Errorw("login failed", "error", err)
		}
		h.renderForm(c, template.PageLogin, form.Username, err)
		return
	}

	h.recordLogin(metrics.ResultSuccess)
	maxAge := int(time.Until(result.Session.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookie, result.Token, maxAge)
	c.Redirect(http.StatusSeeOther, constants.RouteDashboard)
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.pages.HTML(c, http.StatusOK, template.PageRegister, pongo2.Context{})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid registration form", "error", err)
	}

	if err := utils.ValidateStruct(&form); err != nil {
		h.recordRegistration(metrics.ResultRejected)
		h.renderForm(c, template.PageRegister, form.Username, err)
		return
	}

	_, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.IsDuplicateUserError(err), errors.IsValidationError(err):
			h.recordRegistration(metrics.ResultRejected)
		default:
			h.recordRegistration(metrics.ResultFailure)
			h.logger.Errorw("registration failed", "error", err)
		}
		h.renderForm(c, template.PageRegister, form.Username, err)
		return
	}

	h.recordRegistration(metrics.ResultSuccess)
	c.Redirect(http.StatusSeeOther, constants.RouteLogin+"?registered=1")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		if !errors.IsNotAuthenticatedError(err) {
			h.logger.Errorw("logout failed", "error", err)
		}
	}

	utils.ClearSessionCookie(c, h.cookie)
	c.Redirect(http.StatusSeeOther, constants.RouteLogin)
}

// renderForm re-renders a form page with the error message and its status.
func (h *AuthHandler) renderForm(c *gin.Context, page, username string, err error) {
	status := http.StatusInternalServerError
	message := constants.ErrMsgInternalServerError
	if appErr := errors.GetAppError(err); appErr != nil {
		status = appErr.Code
		message = appErr.Message
	}

	h.pages.HTML(c, status, page, pongo2.Context{
		"error":    message,
		"username": strings.TrimSpace(username),
	})
}

func (h *AuthHandler) recordLogin(result string) {
	if h.attempts != nil {
		h.attempts.LoginAttempt(result)
	}
}

func (h *AuthHandler) recordRegistration(result string) {
	if h.attempts != nil {
		h.attempts.RegistrationAttempt(result)
	}
}
