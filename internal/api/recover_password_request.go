package api

// swagger:model api.RecoverPasswordRequest
type RecoverPasswordRequest struct {
	Email string `form:"email" validate:"required,email" example:"alice@example.com"`
}
