package model

import (
	"encoding/json"
	"net/mail"
	"strings"
)

// Email is a validated, normalized address. Two emails are equal when their
// normalized values are equal. The zero value is empty; construct through
// ParseEmail.
type Email struct {
	address string
}

// ParseEmail normalizes raw (trimmed, lowercased) and validates its syntax.
// Returns a ValidationError on malformed input.
func ParseEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if _, err := mail.ParseAddress(normalized); err != nil {
		return Email{}, NewValidationError("invalid email format")
	}
	return Email{address: normalized}, nil
}

func (e Email) String() string {
	return e.address
}

func (e Email) IsZero() bool {
	return e.address == ""
}

func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.address)
}

func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseEmail(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
