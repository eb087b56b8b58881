package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"mediashelf/internal/domain/model"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/pkg/token"
)

type fakeUserRepo struct {
	byID    map[string]*model.User
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *model.User) (string, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return "", dbRepository.ErrDuplicate
	}

	user.ID = primitive.NewObjectID()
	f.byID[user.ID.Hex()] = user
	f.byEmail[user.Email] = user

	return user.ID.Hex(), nil
}

func (f *fakeUserRepo) ByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, dbRepository.ErrNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id string) (*model.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, dbRepository.ErrNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id, name, photo string) error {
	user, ok := f.byID[id]
	if !ok {
		return dbRepository.ErrNotFound
	}
	user.Name = name
	user.Photo = photo

	return nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id, role string) error {
	user, ok := f.byID[id]
	if !ok {
		return dbRepository.ErrNotFound
	}
	user.Role = role

	return nil
}

func (f *fakeUserRepo) All(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(f.byID))
	for _, user := range f.byID {
		users = append(users, *user)
	}

	return users, nil
}

func testAccount(t *testing.T) (*Account, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()

	return NewAccount(users, token.NewManager("test-secret", time.Hour)), users
}

func TestRegisterThenLogin(t *testing.T) {
	uc, users := testAccount(t)
	ctx := context.Background()

	id, signed, err := uc.Register(ctx, &model.User{
		Name:  "Test User",
		Email: "Test@Example.COM",
	}, "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotEmpty(t, signed)

	stored, err := users.ByEmail(ctx, "test@example.com")
	require.NoError(t, err, "email must be stored lowercased")
	assert.Equal(t, model.RoleMember, stored.Role, "role defaults to member")
	assert.NotEqual(t, "hunter22", stored.Password, "password must be hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
	assert.False(t, stored.AddedAt.IsZero())

	signed, err = uc.Login(ctx, "TEST@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := testAccount(t)
	ctx := context.Background()

	_, _, err := uc.Register(ctx, &model.User{Name: "a", Email: "dup@example.com"}, "pw")
	require.NoError(t, err)

	_, _, err = uc.Register(ctx, &model.User{Name: "b", Email: "dup@example.com"}, "pw")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := testAccount(t)
	ctx := context.Background()

	_, _, err := uc.Register(ctx, &model.User{Name: "a", Email: "a@example.com"}, "right")
	require.NoError(t, err)

	_, err = uc.Login(ctx, "a@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	uc, _ := testAccount(t)

	_, err := uc.Login(context.Background(), "nobody@example.com", "pw")
	require.ErrorIs(t, err, dbRepository.ErrNotFound)
}

func TestSetRoleValidatesRole(t *testing.T) {
	uc, _ := testAccount(t)
	ctx := context.Background()

	id, _, err := uc.Register(ctx, &model.User{Name: "a", Email: "a@example.com"}, "pw")
	require.NoError(t, err)

	require.ErrorIs(t, uc.SetRole(ctx, id, "owner"), ErrInvalidRole)
	require.NoError(t, uc.SetRole(ctx, id, model.RoleAdmin))

	user, err := uc.User(ctx, id)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestToggleAdminFlipsRole(t *testing.T) {
	uc, _ := testAccount(t)
	ctx := context.Background()

	id, _, err := uc.Register(ctx, &model.User{Name: "a", Email: "a@example.com"}, "pw")
	require.NoError(t, err)

	role, err := uc.ToggleAdmin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	role, err = uc.ToggleAdmin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, role)
}

func TestToggleAdminUnknownUser(t *testing.T) {
	uc, _ := testAccount(t)

	_, err := uc.ToggleAdmin(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, dbRepository.ErrNotFound)
}
