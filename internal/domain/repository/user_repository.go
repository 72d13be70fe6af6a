package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-auth-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// email constraint. The constraint is authoritative; the service's
	// pre-insert existence check only produces a faster error.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the store port for user records.
// Users are created and read in scope, never updated or deleted.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
