package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The platform stores columns in camelCase and names the table "user",
// so every identifier that is not already lowercase must be quoted.
const userProjection = `id, email, "firstName", "lastName", role, "roleSlug",
	       disabled, "mfaEnabled", "createdAt", "updatedAt"`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// List retrieves all users, most recently created first. The password
// column is never part of the projection.
func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	query := `
		SELECT ` + userProjection + `
		FROM "user"
		ORDER BY "createdAt" DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
			&u.Role, &u.RoleSlug, &u.Disabled, &u.MFAEnabled,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	if users == nil {
		users = []User{}
	}

	return users, nil
}

// GetByEmail retrieves a single user by exact email match.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT ` + userProjection + `
		FROM "user"
		WHERE email = $1`

	var u User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.Role, &u.RoleSlug, &u.Disabled, &u.MFAEnabled,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &u, nil
}

// GetRef retrieves only id and email for an existence check.
func (r *PostgresRepository) GetRef(ctx context.Context, email string) (*Ref, error) {
	query := `SELECT id, email FROM "user" WHERE email = $1`

	var ref Ref
	err := r.pool.QueryRow(ctx, query, email).Scan(&ref.ID, &ref.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &ref, nil
}

// UpdatePassword sets the password hash and refreshes updatedAt in a single
// statement. Returns ErrUserNotFound if no row matches the email.
func (r *PostgresRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `
		UPDATE "user"
		SET password = $1, "updatedAt" = NOW()
		WHERE email = $2`

	result, err := r.pool.Exec(ctx, query, passwordHash, email)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
