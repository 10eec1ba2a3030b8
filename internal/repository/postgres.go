package repository

import (
	"context"
	"errors"
	"fmt"

	"accounthub/internal/database"
	"accounthub/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the query surface shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store on top of a pgx pool. Sessions run on a
// transaction, so Commit is the point where writes become durable.
type PostgresStore struct {
	db database.DB
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Users() Users {
	return &postgresUsers{q: s.db}
}

func (s *PostgresStore) Begin(ctx context.Context) (Session, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("Begin: %w", err)
	}
	return &postgresSession{tx: tx}, nil
}

type postgresSession struct {
	tx pgx.Tx
}

func (s *postgresSession) Users() Users {
	return &postgresUsers{q: s.tx}
}

func (s *postgresSession) Commit(ctx context.Context) error {
	if err := s.tx.Commit(ctx); err != nil {
		return fmt.Errorf("Commit: %w", err)
	}
	return nil
}

func (s *postgresSession) Rollback(ctx context.Context) error {
	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("Rollback: %w", err)
	}
	return nil
}

type postgresUsers struct {
	q querier
}

const userColumns = `id, name, email, password_hash, password_salt, created_at, is_admin`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var email string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&email,
		&u.PasswordHash,
		&u.PasswordSalt,
		&u.CreatedAt,
		&u.IsAdmin,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	parsed, err := model.ParseEmail(email)
	if err != nil {
		return nil, err
	}
	u.Email = parsed
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *postgresUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return u, nil
}

func (r *postgresUsers) FindByEmail(ctx context.Context, email model.Email) (*model.User, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email.String(),
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	return u, nil
}

func (r *postgresUsers) FindByName(ctx context.Context, name string) (*model.User, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE name = $1`,
		name,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("FindByName: %w", err)
	}
	return u, nil
}

func (r *postgresUsers) Insert(ctx context.Context, u *model.User) error {
	row := r.q.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, password_salt, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Name,
		u.Email.String(),
		u.PasswordHash,
		u.PasswordSalt,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

func (r *postgresUsers) Update(ctx context.Context, u *model.User) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, password_hash = $3, password_salt = $4, is_admin = $5
		 WHERE id = $6`,
		u.Name,
		u.Email.String(),
		u.PasswordHash,
		u.PasswordSalt,
		u.IsAdmin,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresUsers) DeleteByID(ctx context.Context, id int) (*model.User, error) {
	row := r.q.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("DeleteByID: %w", err)
	}
	return u, nil
}
