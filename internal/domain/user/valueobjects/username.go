package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const MaxUsernameLength = 150

type Username struct {
	value string
}

// NewUsername trims surrounding whitespace and rejects blank, overlong or
// control-character names. Case is preserved.
func NewUsername(raw string) (*Username, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("username is required")
	}
	if utf8.RuneCountInString(value) > MaxUsernameLength {
		return nil, fmt.Errorf("username must not exceed %d characters", MaxUsernameLength)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return nil, fmt.Errorf("username contains invalid characters")
		}
	}
	return &Username{value: value}, nil
}

func (u *Username) String() string {
	return u.value
}

func (u *Username) Equals(other *Username) bool {
	return other != nil && u.value == other.value
}
