package utils

import (
	"net/url"
	"strings"
)

// MaskSecret hides all but the first two characters of a secret.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", 6)
}

// MaskURLPassword replaces the password of a connection URL with asterisks.
// Strings that are not URLs are returned unchanged.
func MaskURLPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
