package api

// RecoverPasswordResponse returns the generated temporary password in plain
// text, matching the reset contract.
// swagger:model api.RecoverPasswordResponse
type RecoverPasswordResponse struct {
	TemporaryPassword string `json:"temporary_password" example:"Xk7!pq2Rw9az"`
}
