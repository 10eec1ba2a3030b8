package api

// ErrorResponse carries either a transport-level message (bad binding,
// invalid parameters) or the ordered business notifications of a failed
// operation.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message       string   `json:"message,omitempty"`
	Notifications []string `json:"notifications,omitempty"`
}
