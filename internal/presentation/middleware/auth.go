package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/domain/dto"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/internal/presentation"
	"mediashelf/pkg/token"
)

// Auth gates routes behind bearer credentials. RequireAdmin additionally
// re-reads the user record so a stale token cannot keep elevated access.
type Auth struct {
	tokens *token.Manager
	users  dbRepository.UserRepo
}

func NewAuth(tokens *token.Manager, users dbRepository.UserRepo) *Auth {
	return &Auth{
		tokens: tokens,
		users:  users,
	}
}

func (a *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := a.extractClaims(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.Message{Message: err.Error()})
		}

		c.Set(presentation.ContextClaimsKey, claims)

		return next(c)
	}
}

func (a *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return a.RequireAuth(func(c echo.Context) error {
		claims, _ := c.Get(presentation.ContextClaimsKey).(*token.Claims)

		user, err := a.users.ByEmail(c.Request().Context(), claims.Email)
		if err != nil || !user.IsAdmin() {
			return c.JSON(http.StatusForbidden, dto.Message{Message: "Forbidden access"})
		}

		return next(c)
	})
}

func (a *Auth) extractClaims(c echo.Context) (*token.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, errMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errMalformedHeader
	}

	claims, err := a.tokens.Verify(parts[1])
	if err != nil {
		return nil, errInvalidToken
	}

	return claims, nil
}
