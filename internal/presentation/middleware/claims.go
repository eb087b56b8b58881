package middleware

import (
	"github.com/labstack/echo/v4"

	"mediashelf/internal/presentation"
	"mediashelf/pkg/token"
)

// Claims returns the verified claims RequireAuth stored on the context,
// or nil when the route was reached without passing the middleware.
func Claims(c echo.Context) *token.Claims {
	claims, _ := c.Get(presentation.ContextClaimsKey).(*token.Claims)

	return claims
}
