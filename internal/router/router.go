// Package router wires the handler groups onto the echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"accounthub/internal/cache"
	"accounthub/internal/database"
	"accounthub/internal/handler"
	"accounthub/internal/handler/auth"
	"accounthub/internal/handler/users"
	"accounthub/internal/middleware"
)

// Deps carries everything Setup needs to register the routes.
type Deps struct {
	DB        database.DB
	Cache     cache.Cache
	Users     users.Service
	Auth      auth.Service
	JWTSecret string
}

// Setup registers every route. Registration and creation stay open so new
// accounts can exist before anyone can log in; mutations on other accounts
// need the admin role.
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(d.DB, d.Cache), middleware.RequireAuth(d.JWTSecret))

	api.POST("/auth/login", auth.LoginHandler(d.Auth))
	api.POST("/auth/recover-password", auth.RecoverPasswordHandler(d.Auth))

	api.POST("/users", users.CreateUserHandler(d.Users))
	api.GET("/users", users.FindUserHandler(d.Users))
	api.GET("/users/:user_id", users.GetUserHandler(d.Users))
	api.PUT("/users/:user_id", users.UpdateUserHandler(d.Users), middleware.RequireAdmin(d.JWTSecret))
	api.DELETE("/users/:user_id", users.DeleteUserHandler(d.Users), middleware.RequireAdmin(d.JWTSecret))
}
