package ticket

import "context"

// Repository stores imported tickets. Writes happen only during import.
type Repository interface {
	// Count returns the number of stored tickets.
	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts tickets. A duplicate ticket ID fails the whole call.
	CreateBatch(ctx context.Context, tickets []*Ticket) error

	// ListAll returns every ticket ordered by requested time, then ID.
	ListAll(ctx context.Context) ([]*Ticket, error)

	// DeleteAll removes every ticket. Only an explicit forced re-import uses it.
	DeleteAll(ctx context.Context) error
}

// ImportMarkerRepository stores the history of successful imports.
type ImportMarkerRepository interface {
	Create(ctx context.Context, marker *ImportMarker) error

	// GetLatest returns the most recent marker, or nil when nothing was imported.
	GetLatest(ctx context.Context) (*ImportMarker, error)
}
