// Package biztime holds time helpers. Timestamps are stored as UTC-naive
// values; the display timezone only affects rendering.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

var (
	mu       sync.RWMutex
	location = time.UTC
)

// Init sets the display timezone. An empty name keeps UTC.
func Init(tz string) error {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load display timezone %q: %w", tz, err)
	}
	mu.Lock()
	location = loc
	mu.Unlock()
	return nil
}

// Location returns the display timezone.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return location
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts t to UTC keeping the instant. A zero time stays zero.
func ToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// FormatDisplay renders a stored UTC timestamp in the display timezone.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().In(Location()).Format(time.DateTime)
}
