package router

import (
	"net/http"
	"testing"

	"accounthub/internal/cache"
	"accounthub/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{
		DB:        &database.FakeDB{},
		Cache:     &cache.FakeCache{},
		JWTSecret: "secret",
	})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/recover-password",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:user_id",
		http.MethodPut + " /api/users/:user_id",
		http.MethodDelete + " /api/users/:user_id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
