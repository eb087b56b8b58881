package abstraction

import (
	"context"

	"mediashelf/internal/domain/model"
)

type AccountManager interface {
	// Register creates the account and issues its first credential.
	Register(ctx context.Context, user *model.User, password string) (id, signed string, err error)

	// Login verifies the password and issues a credential.
	Login(ctx context.Context, email, password string) (string, error)

	User(ctx context.Context, id string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id, name, photo string) error

	SetRole(ctx context.Context, id, role string) error
	// ToggleAdmin flips member<->admin and returns the new role.
	ToggleAdmin(ctx context.Context, id string) (string, error)

	Users(ctx context.Context) ([]model.User, error)
}
