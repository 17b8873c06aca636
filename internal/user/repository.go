package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when no row matches the requested email.
var ErrUserNotFound = errors.New("user not found")

// Repository provides read and single-write operations on the user table.
// The table and its schema are owned by the workflow platform; this service
// never creates, deletes, or migrates rows.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetRef(ctx context.Context, email string) (*Ref, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
