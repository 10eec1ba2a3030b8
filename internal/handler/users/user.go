// Package users exposes the account CRUD endpoints. Handlers bind and
// validate the request, delegate to the user service and translate its
// notifications into HTTP statuses.
package users

import (
	"context"
	"net/http"
	"strconv"

	"accounthub/internal/api"
	"accounthub/internal/result"
	"accounthub/internal/service"

	"github.com/labstack/echo/v4"
)

// Service is the slice of the user service these handlers need.
type Service interface {
	Create(ctx context.Context, req api.CreateUserRequest) result.Result[api.UserResponse]
	Update(ctx context.Context, id int, req api.UpdateUserRequest) result.Result[api.UserResponse]
	Delete(ctx context.Context, id int) result.Result[api.UserResponse]
	GetByID(ctx context.Context, id int) result.Result[api.UserResponse]
	FindByNameOrEmail(ctx context.Context, email, name string) result.Result[api.UserResponse]
}

// statusFor maps the first notification of a failed result to a status.
// Generic *Failed notes mean a lower layer broke, so they map to 500.
func statusFor(notifications []string) int {
	if len(notifications) == 0 {
		return http.StatusBadRequest
	}
	switch notifications[0] {
	case service.NoteUserNotFound:
		return http.StatusNotFound
	case service.NoteUserAlreadyExists:
		return http.StatusConflict
	case service.NoteCreateFailed, service.NoteUpdateFailed,
		service.NoteDeleteFailed, service.NoteLookupFailed:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func fail(c echo.Context, notifications []string) error {
	return c.JSON(statusFor(notifications), api.ErrorResponse{Notifications: notifications})
}

// @Summary     Create a new user
// @Description Registers an account. The email must not already be in use.
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true  "User name"
// @Param       email    formData string true  "Email address (stored lowercase)"
// @Param       password formData string false "Password (min 8 chars, 1 uppercase, 1 digit)"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		res := svc.Create(c.Request().Context(), req)
		if res.Failed() {
			return fail(c, res.Notifications)
		}
		return c.JSON(http.StatusCreated, res.Value)
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       user_id path int true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id} [get]
func GetUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		res := svc.GetByID(c.Request().Context(), id)
		if res.Failed() {
			return fail(c, res.Notifications)
		}
		return c.JSON(http.StatusOK, res.Value)
	}
}

// @Summary     Find a user by name or email
// @Description Tries the name first, then the email.
// @Tags        users
// @Produce     json
// @Param       name  query string false "User name"
// @Param       email query string false "Email address"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func FindUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.FindUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query"})
		}

		res := svc.FindByNameOrEmail(c.Request().Context(), req.Email, req.Name)
		if res.Failed() {
			return fail(c, res.Notifications)
		}
		return c.JSON(http.StatusOK, res.Value)
	}
}

// @Summary     Update a user by ID
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       user_id  path     int    true  "User ID"
// @Param       name     formData string true  "User name"
// @Param       email    formData string true  "Email address"
// @Param       password formData string false "New password"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [put]
func UpdateUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		res := svc.Update(c.Request().Context(), id, req)
		if res.Failed() {
			return fail(c, res.Notifications)
		}
		return c.JSON(http.StatusOK, res.Value)
	}
}

// @Summary     Delete a user by ID
// @Description Removes the account and returns its last state.
// @Tags        users
// @Produce     json
// @Param       user_id path int true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		res := svc.Delete(c.Request().Context(), id)
		if res.Failed() {
			return fail(c, res.Notifications)
		}
		return c.JSON(http.StatusOK, res.Value)
	}
}
