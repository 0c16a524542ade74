package user

import (
	"fmt"
	"time"

	vo "github.com/ticketsla/ticketsla/internal/domain/user/valueobjects"
	"github.com/ticketsla/ticketsla/internal/shared/biztime"
)

// PasswordHasher hashes and checks passwords. Verify returns an error on mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is a registered dashboard account.
type User struct {
	id           uint
	username     *vo.Username
	passwordHash string
	createdAt    time.Time
}

// NewUser creates an account, storing only the hash of password.
func NewUser(username *vo.Username, password *vo.Password, hasher PasswordHasher) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if password == nil {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		username:     username,
		passwordHash: hash,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, username *vo.Username, passwordHash string, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint               { return u.id }
func (u *User) Username() *vo.Username { return u.username }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) CreatedAt() time.Time   { return u.createdAt }

// SetID is called by the repository after insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword checks plainPassword against the stored hash.
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}
