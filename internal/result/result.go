// Package result wraps service outcomes as either a success payload or an
// ordered list of human-readable business-rule notifications.
package result

// Result carries a value or the notifications explaining why the operation
// failed. A result with any notification is a failure, even when a value is
// also present.
type Result[T any] struct {
	Value         T        `json:"value,omitempty"`
	Notifications []string `json:"notifications,omitempty"`
}

// Ok returns a successful result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Fail returns a failed result carrying the given notifications.
func Fail[T any](notifications ...string) Result[T] {
	return Result[T]{Notifications: notifications}
}

// Failed reports whether any notification was recorded.
func (r Result[T]) Failed() bool {
	return len(r.Notifications) > 0
}

// Notify appends a notification, marking the result failed.
func (r *Result[T]) Notify(message string) {
	r.Notifications = append(r.Notifications, message)
}
