package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create inserts the user and assigns its ID. A taken username yields a
	// duplicate user error.
	Create(ctx context.Context, user *User) error

	// GetByUsername returns nil, nil when no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	Count(ctx context.Context) (int64, error)
}
