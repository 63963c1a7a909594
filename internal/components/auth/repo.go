package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

type (
	repoer interface {
		Create(ctx context.Context, username, passwordHash string) (*User, error)
		FindByUsername(ctx context.Context, username string) (*User, error)
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

// Create persists a new user. Username uniqueness is enforced by the
// database; a unique violation surfaces as ErrDuplicateUsername.
func (r *repo) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	user := new(User)

	stmt := `
	INSERT INTO users (username, password_hash)
	VALUES ($1, $2)
	RETURNING id, username, password_hash, is_active`

	err := r.pool.QueryRow(ctx, stmt, username, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// FindByUsername does a case-sensitive exact match on username.
func (r *repo) FindByUsername(ctx context.Context, username string) (*User, error) {
	stmt := `
	SELECT id, username, password_hash, is_active
	FROM users
	WHERE username = $1`

	user := new(User)
	err := r.pool.QueryRow(ctx, stmt, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
