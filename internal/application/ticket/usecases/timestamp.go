package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// layouts cast does not know about but ticket exports use.
var extraLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// parseTimestamp reads a source timestamp as UTC. Values without an offset
// are taken to be UTC already.
func parseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range extraLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	t, err := cast.ToTimeInDefaultLocationE(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
