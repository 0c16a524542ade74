package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/shared/config"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
)

func sessionCookieName(cfg config.CookieConfig) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return constants.DefaultSessionName
}

// SetSessionCookie stores the signed session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(sessionCookieName(cfg), token, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(sessionCookieName(cfg), "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// GetSessionToken returns the session cookie value, or "" when absent.
func GetSessionToken(c *gin.Context, cfg config.CookieConfig) string {
	token, err := c.Cookie(sessionCookieName(cfg))
	if err != nil {
		return ""
	}
	return token
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
