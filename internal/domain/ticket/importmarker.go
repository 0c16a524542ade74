package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ticketsla/ticketsla/internal/shared/biztime"
)

// ImportMarker records one successful import: which source was loaded, its
// content hash and how many rows it produced.
type ImportMarker struct {
	ID            string
	Source        string
	ContentSHA256 string
	RowCount      int
	ImportedAt    time.Time
}

func NewImportMarker(source, checksum string, rowCount int) (*ImportMarker, error) {
	if checksum == "" {
		return nil, fmt.Errorf("content checksum is required")
	}
	if rowCount < 0 {
		return nil, fmt.Errorf("row count cannot be negative")
	}
	return &ImportMarker{
		ID:            uuid.NewString(),
		Source:        source,
		ContentSHA256: checksum,
		RowCount:      rowCount,
		ImportedAt:    biztime.NowUTC(),
	}, nil
}

// Matches reports whether checksum is the content this marker was written for.
func (m *ImportMarker) Matches(checksum string) bool {
	return m != nil && m.ContentSHA256 == checksum
}
