package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mediashelf/internal/domain/model"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/pkg/token"
)

// Account covers registration, login and user administration.
type Account struct {
	users  dbRepository.UserRepo
	tokens *token.Manager
}

func NewAccount(users dbRepository.UserRepo, tokens *token.Manager) *Account {
	return &Account{
		users:  users,
		tokens: tokens,
	}
}

func (u *Account) Register(ctx context.Context, user *model.User, password string) (string, string, error) {
	user.Email = strings.ToLower(user.Email)

	// Friendly pre-check; the unique index on email is what actually
	// guarantees no double registration.
	if _, err := u.users.ByEmail(ctx, user.Email); err == nil {
		return "", "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	user.Password = string(hash)

	if user.Role != model.RoleAdmin {
		user.Role = model.RoleMember
	}
	user.AddedAt = time.Now()

	id, err := u.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, dbRepository.ErrDuplicate) {
			return "", "", ErrEmailTaken
		}

		return "", "", err
	}

	signed, err := u.tokens.Issue(id, user.Name, user.Email, user.Role, user.Photo)
	if err != nil {
		return "", "", err
	}

	return id, signed, nil
}

func (u *Account) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.ByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return u.tokens.Issue(user.ID.Hex(), user.Name, user.Email, user.Role, user.Photo)
}

func (u *Account) User(ctx context.Context, id string) (*model.User, error) {
	return u.users.ByID(ctx, id)
}

func (u *Account) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.users.ByEmail(ctx, strings.ToLower(email))
}

func (u *Account) UpdateProfile(ctx context.Context, id, name, photo string) error {
	return u.users.UpdateProfile(ctx, id, name, photo)
}

func (u *Account) SetRole(ctx context.Context, id, role string) error {
	if role != model.RoleMember && role != model.RoleAdmin {
		return ErrInvalidRole
	}

	return u.users.SetRole(ctx, id, role)
}

// ToggleAdmin is a convenience wrapper over SetRole.
func (u *Account) ToggleAdmin(ctx context.Context, id string) (string, error) {
	user, err := u.users.ByID(ctx, id)
	if err != nil {
		return "", err
	}

	role := model.RoleAdmin
	if user.IsAdmin() {
		role = model.RoleMember
	}

	if err := u.users.SetRole(ctx, id, role); err != nil {
		return "", err
	}

	return role, nil
}

func (u *Account) Users(ctx context.Context) ([]model.User, error) {
	return u.users.All(ctx)
}
