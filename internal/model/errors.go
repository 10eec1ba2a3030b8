package model

// ValidationError reports a domain-rule violation such as a malformed email
// address or a weak password. It fails fast at the point of construction or
// assignment and is matched with errors.As.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
