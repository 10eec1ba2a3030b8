package api

// FindUserRequest carries the lookup query: name is tried first, then email.
// swagger:model api.FindUserRequest
type FindUserRequest struct {
	Name  string `query:"name" example:"Alice"`
	Email string `query:"email" example:"alice@example.com"`
}
