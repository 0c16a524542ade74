package valueobjects

import "fmt"

const (
	MinPasswordLength = 8
	// bcrypt only reads the first 72 bytes
	MaxPasswordBytes = 72
)

type Password struct {
	value string
}

func NewPassword(plainPassword string) (*Password, error) {
	if len([]rune(plainPassword)) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(plainPassword) > MaxPasswordBytes {
		return nil, fmt.Errorf("password must not exceed %d bytes", MaxPasswordBytes)
	}
	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}
