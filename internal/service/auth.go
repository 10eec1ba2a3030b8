package service

import (
	"context"
	"errors"
	"time"

	"accounthub/internal/api"
	"accounthub/internal/model"
	"accounthub/internal/repository"
	"accounthub/internal/result"

	"github.com/rs/zerolog"
)

const (
	// NoteInvalidCredentials is deliberately the same for an unknown email
	// and a wrong password, so callers cannot tell which case occurred.
	NoteInvalidCredentials = "invalid credentials"
	NoteLoginFailed        = "failed to log in"
	NoteRecoverFailed      = "failed to recover password"
)

// AuthService verifies credentials, issues access tokens and runs the
// password-recovery flow.
type AuthService struct {
	store    repository.Store
	secret   string
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(store repository.Store, secret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = AccessTokenTTL
	}
	return &AuthService{
		store:    store,
		secret:   secret,
		tokenTTL: tokenTTL,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// Login verifies the email/password pair and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, req api.LoginRequest) result.Result[api.TokenResponse] {
	email, err := model.ParseEmail(req.Email)
	if err != nil {
		return result.Fail[api.TokenResponse](NoteInvalidCredentials)
	}

	user, err := s.store.Users().FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Fail[api.TokenResponse](NoteInvalidCredentials)
	}
	if err != nil {
		s.log.Error().Err(err).Str("email", email.String()).Msg("login lookup failed")
		return result.Fail[api.TokenResponse](NoteLoginFailed)
	}

	if !model.VerifyPassword(req.Password, user.PasswordHash, user.PasswordSalt) {
		return result.Fail[api.TokenResponse](NoteInvalidCredentials)
	}

	token, err := IssueAccessToken(*user, s.secret, s.tokenTTL)
	if err != nil {
		s.log.Error().Err(err).Int("id", user.ID).Msg("token issuance failed")
		return result.Fail[api.TokenResponse](NoteLoginFailed)
	}

	return result.Ok(api.TokenResponse{
		AccessToken: token,
		ExpiresAt:   timeNow().Add(s.tokenTTL),
	})
}

// RecoverPassword generates a temporary password for the account, persists
// the new credentials and returns the plaintext so the caller can hand it to
// the user. Returning the plaintext mirrors the original reset contract.
func (s *AuthService) RecoverPassword(ctx context.Context, rawEmail string) result.Result[string] {
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		return result.Fail[string](NoteUserNotFound)
	}

	user, err := s.store.Users().FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Fail[string](NoteUserNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Str("email", email.String()).Msg("recover lookup failed")
		return result.Fail[string](NoteRecoverFailed)
	}

	tempPassword, err := model.GenerateTemporaryPassword()
	if err != nil {
		s.log.Error().Err(err).Msg("temporary password generation failed")
		return result.Fail[string](NoteRecoverFailed)
	}
	hash, salt, err := model.HashPassword(tempPassword, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("temporary password hashing failed")
		return result.Fail[string](NoteRecoverFailed)
	}
	user.ChangePassword(hash, salt)

	sess, err := s.store.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("begin session failed")
		return result.Fail[string](NoteRecoverFailed)
	}
	defer sess.Rollback(ctx)

	if err := sess.Users().Update(ctx, user); err != nil {
		s.log.Error().Err(err).Int("id", user.ID).Msg("persist new credentials failed")
		return result.Fail[string](NoteRecoverFailed)
	}
	if err := sess.Commit(ctx); err != nil {
		s.log.Error().Err(err).Msg("commit failed")
		return result.Fail[string](NoteRecoverFailed)
	}

	return result.Ok(tempPassword)
}
