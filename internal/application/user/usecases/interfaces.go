package usecases

import (
	"time"

	"github.com/ticketsla/ticketsla/internal/domain/user"
)

// PasswordHasher extends the domain hasher with a throwaway comparison used
// when the username is unknown.
type PasswordHasher interface {
	user.PasswordHasher
	CompareDummy(password string)
}

// SessionTokenService issues and reads the signed session cookie value.
type SessionTokenService interface {
	Sign(sessionID, username string, expiresAt time.Time) (string, error)
	SessionID(token string) (string, error)
}
