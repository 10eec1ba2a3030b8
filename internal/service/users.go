// Package service holds the application services: user CRUD orchestration,
// login and password recovery. Every outcome is a result.Result; expected
// business failures surface as notifications and lower-layer faults are
// logged in full before being converted to a generic notification.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"accounthub/internal/api"
	"accounthub/internal/cache"
	"accounthub/internal/model"
	"accounthub/internal/repository"
	"accounthub/internal/result"
	"accounthub/internal/worker"

	"github.com/rs/zerolog"
)

// Notification texts surfaced to callers. Handlers map these onto HTTP
// statuses, so they are exported.
const (
	NoteUserAlreadyExists = "user already exists"
	NoteUserNotFound      = "user not found"
	NoteCreateFailed      = "failed to create user"
	NoteUpdateFailed      = "failed to update user"
	NoteDeleteFailed      = "failed to delete user"
	NoteLookupFailed      = "failed to look up user"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id int) string {
	return "user:" + strconv.Itoa(id)
}

// UserService orchestrates account CRUD over the repository contract.
type UserService struct {
	store repository.Store
	cache cache.Cache
	pool  worker.Pool
	log   zerolog.Logger
}

func NewUserService(store repository.Store, cch cache.Cache, pool worker.Pool, log zerolog.Logger) *UserService {
	return &UserService{
		store: store,
		cache: cch,
		pool:  pool,
		log:   log.With().Str("service", "users").Logger(),
	}
}

func userView(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email.String(),
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// cacheView stores the view off the request path; population is best-effort.
func (s *UserService) cacheView(view api.UserResponse) {
	s.pool.Submit(func() {
		payload, err := json.Marshal(view)
		if err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.cache.Set(ctx, userCacheKey(view.ID), payload, userCacheTTL)
	})
}

func (s *UserService) dropCachedView(id int) {
	s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.cache.Del(ctx, userCacheKey(id))
	})
}

// Create registers a new account. The email must not already be registered;
// the lookup-before-insert check and the unique constraint both surface the
// same notification.
func (s *UserService) Create(ctx context.Context, req api.CreateUserRequest) result.Result[api.UserResponse] {
	email, err := model.ParseEmail(req.Email)
	if err != nil {
		return result.Fail[api.UserResponse](err.Error())
	}

	if _, err := s.store.Users().FindByEmail(ctx, email); err == nil {
		return result.Fail[api.UserResponse](NoteUserAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Str("email", email.String()).Msg("duplicate-email lookup failed")
		return result.Fail[api.UserResponse](NoteCreateFailed)
	}

	user := model.NewUser(0, req.Name, email)
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return result.Fail[api.UserResponse](verr.Error())
			}
			s.log.Error().Err(err).Msg("password hashing failed")
			return result.Fail[api.UserResponse](NoteCreateFailed)
		}
	}

	sess, err := s.store.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("begin session failed")
		return result.Fail[api.UserResponse](NoteCreateFailed)
	}
	defer sess.Rollback(ctx)

	if err := sess.Users().Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return result.Fail[api.UserResponse](NoteUserAlreadyExists)
		}
		s.log.Error().Err(err).Msg("insert user failed")
		return result.Fail[api.UserResponse](NoteCreateFailed)
	}
	if err := sess.Commit(ctx); err != nil {
		s.log.Error().Err(err).Msg("commit failed")
		return result.Fail[api.UserResponse](NoteCreateFailed)
	}

	view := userView(user)
	s.cacheView(view)
	return result.Ok(view)
}

// Update loads the account, applies the new fields and, when a password is
// supplied, re-validates and re-hashes it.
func (s *UserService) Update(ctx context.Context, id int, req api.UpdateUserRequest) result.Result[api.UserResponse] {
	user, err := s.store.Users().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Fail[api.UserResponse](NoteUserNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("load user failed")
		return result.Fail[api.UserResponse](NoteUpdateFailed)
	}

	email, err := model.ParseEmail(req.Email)
	if err != nil {
		return result.Fail[api.UserResponse](err.Error())
	}
	user.Name = req.Name
	user.Email = email

	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return result.Fail[api.UserResponse](verr.Error())
			}
			s.log.Error().Err(err).Msg("password hashing failed")
			return result.Fail[api.UserResponse](NoteUpdateFailed)
		}
	}

	sess, err := s.store.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("begin session failed")
		return result.Fail[api.UserResponse](NoteUpdateFailed)
	}
	defer sess.Rollback(ctx)

	if err := sess.Users().Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return result.Fail[api.UserResponse](NoteUserNotFound)
		case errors.Is(err, repository.ErrDuplicateEmail):
			return result.Fail[api.UserResponse](NoteUserAlreadyExists)
		}
		s.log.Error().Err(err).Int("id", id).Msg("update user failed")
		return result.Fail[api.UserResponse](NoteUpdateFailed)
	}
	if err := sess.Commit(ctx); err != nil {
		s.log.Error().Err(err).Msg("commit failed")
		return result.Fail[api.UserResponse](NoteUpdateFailed)
	}

	view := userView(user)
	s.dropCachedView(id)
	s.cacheView(view)
	return result.Ok(view)
}

// Delete removes the account and returns its last view. A missing id fails
// with a notification and never commits.
func (s *UserService) Delete(ctx context.Context, id int) result.Result[api.UserResponse] {
	sess, err := s.store.Begin(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("begin session failed")
		return result.Fail[api.UserResponse](NoteDeleteFailed)
	}
	defer sess.Rollback(ctx)

	deleted, err := sess.Users().DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Fail[api.UserResponse](NoteUserNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("delete user failed")
		return result.Fail[api.UserResponse](NoteDeleteFailed)
	}
	if err := sess.Commit(ctx); err != nil {
		s.log.Error().Err(err).Msg("commit failed")
		return result.Fail[api.UserResponse](NoteDeleteFailed)
	}

	s.dropCachedView(id)
	return result.Ok(userView(deleted))
}

// GetByID serves reads through the cache; misses fall back to the store and
// repopulate it.
func (s *UserService) GetByID(ctx context.Context, id int) result.Result[api.UserResponse] {
	if data, err := s.cache.Get(ctx, userCacheKey(id)).Bytes(); err == nil {
		var view api.UserResponse
		if err := json.Unmarshal(data, &view); err == nil {
			return result.Ok(view)
		}
	}

	user, err := s.store.Users().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Fail[api.UserResponse](NoteUserNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("load user failed")
		return result.Fail[api.UserResponse](NoteLookupFailed)
	}

	view := userView(user)
	s.cacheView(view)
	return result.Ok(view)
}

// FindByNameOrEmail tries the name first and falls back to the email; blank
// arguments are skipped.
func (s *UserService) FindByNameOrEmail(ctx context.Context, email, name string) result.Result[api.UserResponse] {
	if strings.TrimSpace(name) != "" {
		user, err := s.store.Users().FindByName(ctx, name)
		if err == nil {
			return result.Ok(userView(user))
		}
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Str("name", name).Msg("lookup by name failed")
			return result.Fail[api.UserResponse](NoteLookupFailed)
		}
	}

	if strings.TrimSpace(email) != "" {
		if addr, err := model.ParseEmail(email); err == nil {
			user, err := s.store.Users().FindByEmail(ctx, addr)
			if err == nil {
				return result.Ok(userView(user))
			}
			if !errors.Is(err, repository.ErrNotFound) {
				s.log.Error().Err(err).Str("email", addr.String()).Msg("lookup by email failed")
				return result.Fail[api.UserResponse](NoteLookupFailed)
			}
		}
	}

	return result.Fail[api.UserResponse](NoteUserNotFound)
}
