package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounthub/internal/api"
	"accounthub/internal/result"
	"accounthub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type fakeService struct {
	LoginFn   func(ctx context.Context, req api.LoginRequest) result.Result[api.TokenResponse]
	RecoverFn func(ctx context.Context, email string) result.Result[string]
}

func (f *fakeService) Login(ctx context.Context, req api.LoginRequest) result.Result[api.TokenResponse] {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, req)
	}
	panic("unexpected Login")
}

func (f *fakeService) RecoverPassword(ctx context.Context, email string) result.Result[string] {
	if f.RecoverFn != nil {
		return f.RecoverFn(ctx, email)
	}
	panic("unexpected RecoverPassword")
}

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newFormCtx(e, "%")
		require.NoError(t, LoginHandler(&fakeService{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newFormCtx(e, "email=ana@x.com&password=Senha123!")
		require.NoError(t, LoginHandler(&fakeService{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		e.Validator = &stubValidator{}
		svc := &fakeService{
			LoginFn: func(ctx context.Context, req api.LoginRequest) result.Result[api.TokenResponse] {
				return result.Fail[api.TokenResponse](service.NoteInvalidCredentials)
			},
		}
		ctx, rec := newFormCtx(e, "email=ana@x.com&password=wrong")
		require.NoError(t, LoginHandler(svc)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), service.NoteInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		svc := &fakeService{
			LoginFn: func(ctx context.Context, req api.LoginRequest) result.Result[api.TokenResponse] {
				require.Equal(t, "ana@x.com", req.Email)
				require.Equal(t, "Senha123!", req.Password)
				return result.Ok(api.TokenResponse{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})
			},
		}
		ctx, rec := newFormCtx(e, "email=ana@x.com&password=Senha123!")
		require.NoError(t, LoginHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"access_token":"tok"`)
	})
}

func TestRecoverPasswordHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newFormCtx(e, "%")
		require.NoError(t, RecoverPasswordHandler(&fakeService{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		e.Validator = &stubValidator{}
		svc := &fakeService{
			RecoverFn: func(ctx context.Context, email string) result.Result[string] {
				return result.Fail[string](service.NoteUserNotFound)
			},
		}
		ctx, rec := newFormCtx(e, "email=ghost@x.com")
		require.NoError(t, RecoverPasswordHandler(svc)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("persist fault", func(t *testing.T) {
		e.Validator = &stubValidator{}
		svc := &fakeService{
			RecoverFn: func(ctx context.Context, email string) result.Result[string] {
				return result.Fail[string](service.NoteRecoverFailed)
			},
		}
		ctx, rec := newFormCtx(e, "email=ana@x.com")
		require.NoError(t, RecoverPasswordHandler(svc)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success returns the temporary password", func(t *testing.T) {
		e.Validator = &stubValidator{}
		svc := &fakeService{
			RecoverFn: func(ctx context.Context, email string) result.Result[string] {
				require.Equal(t, "ana@x.com", email)
				return result.Ok("Xk7!pq2Rw9az")
			},
		}
		ctx, rec := newFormCtx(e, "email=ana@x.com")
		require.NoError(t, RecoverPasswordHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"temporary_password":"Xk7!pq2Rw9az"`)
	})
}
