package database

import (
	"context"

	"mediashelf/internal/domain/model"
)

type UserRepo interface {
	// Insert stores a new user. Returns ErrDuplicate when the email is taken.
	Insert(ctx context.Context, user *model.User) (string, error)

	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id string) (*model.User, error)

	// UpdateProfile replaces the name and photo fields only.
	UpdateProfile(ctx context.Context, id, name, photo string) error

	SetRole(ctx context.Context, id, role string) error

	// All returns every user with secret fields projected out.
	All(ctx context.Context) ([]model.User, error)
}
