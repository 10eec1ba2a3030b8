// Package auth exposes the login and password-recovery endpoints.
package auth

import (
	"context"
	"net/http"

	"accounthub/internal/api"
	"accounthub/internal/result"

	"github.com/labstack/echo/v4"
)

// Service is the slice of the auth service these handlers need.
type Service interface {
	Login(ctx context.Context, req api.LoginRequest) result.Result[api.TokenResponse]
	RecoverPassword(ctx context.Context, email string) result.Result[string]
}

// @Summary     Log in
// @Description Verifies the credentials and returns a signed access token.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "Email address"
// @Param       password formData string true "Password"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		res := svc.Login(c.Request().Context(), req)
		if res.Failed() {
			// Every login failure is 401 so callers cannot probe which
			// part of the credential pair was wrong.
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Notifications: res.Notifications})
		}
		return c.JSON(http.StatusOK, res.Value)
	}
}
