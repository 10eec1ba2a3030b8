package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"accounthub/internal/database"
	"accounthub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeUserRow supports the two scan shapes used by postgresUsers:
// 7 destinations for full-row reads and 2 for Insert (id, created_at).
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 7:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email.String()
		*dest[3].(*[]byte) = u.PasswordHash
		*dest[4].(*[]byte) = u.PasswordSalt
		*dest[5].(*time.Time) = u.CreatedAt
		*dest[6].(*bool) = u.IsAdmin
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

func sampleUser(t *testing.T) *model.User {
	t.Helper()
	email, err := model.ParseEmail("alice@example.com")
	require.NoError(t, err)
	return &model.User{
		ID:           7,
		Name:         "Alice",
		Email:        email,
		PasswordHash: []byte{1, 2, 3},
		PasswordSalt: []byte{4, 5, 6},
		CreatedAt:    time.Now().UTC(),
		IsAdmin:      true,
	}
}

func TestPostgresUsersFind(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser(t)

	t.Run("found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{user: sample}
		}}
		store := NewPostgresStore(db)

		u, err := store.Users().FindByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
		require.Equal(t, sample.Email, u.Email)
		require.Equal(t, sample.PasswordHash, u.PasswordHash)

		u, err = store.Users().FindByEmail(ctx, sample.Email)
		require.NoError(t, err)
		require.Equal(t, sample.Name, u.Name)

		u, err = store.Users().FindByName(ctx, "Alice")
		require.NoError(t, err)
		require.True(t, u.IsAdmin)
	})

	t.Run("no rows", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{scanErr: pgx.ErrNoRows}
		}}
		store := NewPostgresStore(db)

		_, err := store.Users().FindByID(ctx, 1)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = store.Users().FindByEmail(ctx, sample.Email)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = store.Users().FindByName(ctx, "nobody")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{scanErr: errors.New("boom")}
		}}
		_, err := NewPostgresStore(db).Users().FindByID(ctx, 1)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresUsersInsert(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser(t)

	t.Run("assigns id and created_at", func(t *testing.T) {
		now := time.Now().UTC()
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, "Alice", args[0])
			require.Equal(t, "alice@example.com", args[1])
			return &fakeUserRow{user: &model.User{ID: 42, CreatedAt: now}}
		}}
		u := *sample
		u.ID = 0
		require.NoError(t, NewPostgresStore(db).Users().Insert(ctx, &u))
		require.Equal(t, 42, u.ID)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505"}}
		}}
		u := *sample
		err := NewPostgresStore(db).Users().Insert(ctx, &u)
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestPostgresUsersUpdate(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser(t)

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, sample.ID, args[5])
			return pgconn.NewCommandTag("UPDATE 1"), nil
		}}
		require.NoError(t, NewPostgresStore(db).Users().Update(ctx, sample))
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}}
		err := NewPostgresStore(db).Users().Update(ctx, sample)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}
		}}
		err := NewPostgresStore(db).Users().Update(ctx, sample)
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestPostgresUsersDeleteByID(t *testing.T) {
	ctx := context.Background()
	sample := sampleUser(t)

	t.Run("returns deleted row", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{user: sample}
		}}
		u, err := NewPostgresStore(db).Users().DeleteByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{scanErr: pgx.ErrNoRows}
		}}
		_, err := NewPostgresStore(db).Users().DeleteByID(ctx, 7)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresStoreBegin(t *testing.T) {
	db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) {
		return nil, errors.New("begin")
	}}
	_, err := NewPostgresStore(db).Begin(context.Background())
	require.Error(t, err)
}
