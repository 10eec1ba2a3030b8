package auth

import (
	"net/http"

	"accounthub/internal/api"
	"accounthub/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Recover a password
// @Description Replaces the account password with a generated temporary one
// @Description and returns it in plain text.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "Email address"
// @Success     200 {object} api.RecoverPasswordResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/recover-password [post]
func RecoverPasswordHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RecoverPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		res := svc.RecoverPassword(c.Request().Context(), req.Email)
		if res.Failed() {
			status := http.StatusBadRequest
			switch res.Notifications[0] {
			case service.NoteUserNotFound:
				status = http.StatusNotFound
			case service.NoteRecoverFailed:
				status = http.StatusInternalServerError
			}
			return c.JSON(status, api.ErrorResponse{Notifications: res.Notifications})
		}
		return c.JSON(http.StatusOK, api.RecoverPasswordResponse{TemporaryPassword: res.Value})
	}
}
