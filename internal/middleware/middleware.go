// Package middleware carries the route guards. Both guards verify the bearer
// token with the secret handed in at wiring time; nothing here reads the
// environment.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"accounthub/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where the guards park the verified claims for handlers.
const ContextUserKey = "user"

func extractClaims(c echo.Context, secret string) (*service.Claims, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1], secret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// claims under ContextUserKey.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin additionally demands the admin role claim.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	auth := RequireAuth(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.Claims)
			if claims.Role != service.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
