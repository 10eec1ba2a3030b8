package repository

import (
	"context"

	"accounthub/internal/model"
)

// Test doubles in the FakeDB style: unset functions panic so tests fail loudly
// on unexpected calls. FakeSession.Rollback defaults to a no-op because
// services defer it unconditionally.

type FakeUsers struct {
	FindByIDFn    func(ctx context.Context, id int) (*model.User, error)
	FindByEmailFn func(ctx context.Context, email model.Email) (*model.User, error)
	FindByNameFn  func(ctx context.Context, name string) (*model.User, error)
	InsertFn      func(ctx context.Context, u *model.User) error
	UpdateFn      func(ctx context.Context, u *model.User) error
	DeleteByIDFn  func(ctx context.Context, id int) (*model.User, error)
}

func (f *FakeUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	panic("unexpected FindByID")
}

func (f *FakeUsers) FindByEmail(ctx context.Context, email model.Email) (*model.User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(ctx, email)
	}
	panic("unexpected FindByEmail")
}

func (f *FakeUsers) FindByName(ctx context.Context, name string) (*model.User, error) {
	if f.FindByNameFn != nil {
		return f.FindByNameFn(ctx, name)
	}
	panic("unexpected FindByName")
}

func (f *FakeUsers) Insert(ctx context.Context, u *model.User) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, u)
	}
	panic("unexpected Insert")
}

func (f *FakeUsers) Update(ctx context.Context, u *model.User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, u)
	}
	panic("unexpected Update")
}

func (f *FakeUsers) DeleteByID(ctx context.Context, id int) (*model.User, error) {
	if f.DeleteByIDFn != nil {
		return f.DeleteByIDFn(ctx, id)
	}
	panic("unexpected DeleteByID")
}

type FakeSession struct {
	UsersFn    func() Users
	CommitFn   func(ctx context.Context) error
	RollbackFn func(ctx context.Context) error
}

func (f *FakeSession) Users() Users {
	if f.UsersFn != nil {
		return f.UsersFn()
	}
	panic("unexpected session Users")
}

func (f *FakeSession) Commit(ctx context.Context) error {
	if f.CommitFn != nil {
		return f.CommitFn(ctx)
	}
	panic("unexpected Commit")
}

func (f *FakeSession) Rollback(ctx context.Context) error {
	if f.RollbackFn != nil {
		return f.RollbackFn(ctx)
	}
	return nil
}

type FakeStore struct {
	UsersFn func() Users
	BeginFn func(ctx context.Context) (Session, error)
}

func (f *FakeStore) Users() Users {
	if f.UsersFn != nil {
		return f.UsersFn()
	}
	panic("unexpected store Users")
}

func (f *FakeStore) Begin(ctx context.Context) (Session, error) {
	if f.BeginFn != nil {
		return f.BeginFn(ctx)
	}
	panic("unexpected Begin")
}
