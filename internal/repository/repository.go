// Package repository defines the persistence contract for user accounts and
// its postgres implementation.
package repository

import (
	"context"

	"accounthub/internal/model"
)

// Users is the user persistence contract. Lookups return ErrNotFound when no
// row matches. Insert and Update return ErrDuplicateEmail when the email
// unique constraint is hit.
type Users interface {
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email model.Email) (*model.User, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	DeleteByID(ctx context.Context, id int) (*model.User, error)
}

// Session is a unit of work. Writes issued through Users become durable only
// when Commit returns successfully; Rollback after a commit is a no-op, so it
// can always be deferred.
type Session interface {
	Users() Users
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store hands out pool-backed readers and transactional sessions.
type Store interface {
	Users() Users
	Begin(ctx context.Context) (Session, error)
}
