package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediashelf/internal/domain/model"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/pkg/token"
)

type fakeUserRepo struct {
	users   map[string]*model.User
	touched bool
}

func (f *fakeUserRepo) Insert(_ context.Context, _ *model.User) (string, error) {
	return "", nil
}

func (f *fakeUserRepo) ByEmail(_ context.Context, email string) (*model.User, error) {
	f.touched = true

	user, ok := f.users[email]
	if !ok {
		return nil, dbRepository.ErrNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, _ string) (*model.User, error) {
	return nil, dbRepository.ErrNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, _, _, _ string) error { return nil }

func (f *fakeUserRepo) SetRole(_ context.Context, _, _ string) error { return nil }

func (f *fakeUserRepo) All(_ context.Context) ([]model.User, error) { return nil, nil }

func testRequest(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	users := &fakeUserRepo{}
	auth := NewAuth(tokens, users)

	signed, err := tokens.Issue("abc123", "Test User", "test@example.com", model.RoleMember, "")
	require.NoError(t, err)

	c, rec := testRequest(t, "Bearer "+signed)
	require.NoError(t, auth.RequireAuth(func(c echo.Context) error {
		claims := Claims(c)
		require.NotNil(t, claims)
		assert.Equal(t, "abc123", claims.UserID)
		assert.Equal(t, "test@example.com", claims.Email)

		return c.NoContent(http.StatusOK)
	})(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejections(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	otherTokens := token.NewManager("other-secret", time.Hour)

	foreign, err := otherTokens.Issue("abc123", "a", "a@example.com", model.RoleMember, "")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		message       string
	}{
		{"missing header", "", "missing Authorization header"},
		{"no scheme", "sometoken", "invalid authorization header format"},
		{"wrong scheme", "Basic dXNlcjpwdw==", "invalid authorization header format"},
		{"wrong secret", "Bearer " + foreign, "invalid or expired token"},
		{"garbage token", "Bearer not.a.token", "invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserRepo{}
			auth := NewAuth(tokens, users)

			c, rec := testRequest(t, tt.authorization)
			require.NoError(t, auth.RequireAuth(okHandler)(c))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.False(t, users.touched, "rejected requests must not hit the store")
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	tests := []struct {
		name string
		role string
		code int
	}{
		{"admin passes", model.RoleAdmin, http.StatusOK},
		{"member forbidden", model.RoleMember, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserRepo{users: map[string]*model.User{
				"test@example.com": {Email: "test@example.com", Role: tt.role},
			}}
			auth := NewAuth(tokens, users)

			signed, err := tokens.Issue("abc123", "Test User", "test@example.com", tt.role, "")
			require.NoError(t, err)

			c, rec := testRequest(t, "Bearer "+signed)
			require.NoError(t, auth.RequireAdmin(okHandler)(c))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

// Role checks read the stored record, so a token minted while the user
// was admin stops working once the role is taken away.
func TestRequireAdminStaleToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	users := &fakeUserRepo{users: map[string]*model.User{
		"test@example.com": {Email: "test@example.com", Role: model.RoleMember},
	}}
	auth := NewAuth(tokens, users)

	signed, err := tokens.Issue("abc123", "Test User", "test@example.com", model.RoleAdmin, "")
	require.NoError(t, err)

	c, rec := testRequest(t, "Bearer "+signed)
	require.NoError(t, auth.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
