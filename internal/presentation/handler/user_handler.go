package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/application/usecase"
	"mediashelf/internal/application/usecase/abstraction"
	"mediashelf/internal/domain/dto"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/internal/presentation"
	"mediashelf/internal/presentation/middleware"
	"mediashelf/pkg/logger"
)

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Photo string `json:"photo" validate:"required"`
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

// UserHandler serves the authenticated profile and admin routes.
type UserHandler struct {
	accounts abstraction.AccountManager
}

func NewUserHandler(accounts abstraction.AccountManager) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Me handles GET /api/user, returning the caller's stored document.
func (h *UserHandler) Me(c echo.Context) error {
	claims := middleware.Claims(c)

	user, err := h.accounts.User(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.Message{Message: "User not found"})
		}

		logger.Error("fetching user failed", "id", claims.UserID, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims := middleware.Claims(c)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}

	if err := h.accounts.UpdateProfile(c.Request().Context(), claims.UserID, req.Name, req.Photo); err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.Message{Message: "User not found"})
		}

		logger.Error("updating profile failed", "id", claims.UserID, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, dto.Message{Message: "Profile updated successfully"})
}

// AdminFlag handles GET /users/admin/:email. The path email must be the
// caller's own claimed email; anything else is an identity confusion.
func (h *UserHandler) AdminFlag(c echo.Context) error {
	claims := middleware.Claims(c)
	email := c.Param(presentation.EmailParam)

	if email != claims.Email {
		return c.JSON(http.StatusForbidden, dto.Message{Message: "Forbidden access"})
	}

	user, err := h.accounts.UserByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.Message{Message: "User not found"})
		}

		logger.Error("fetching user failed", "email", email, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, dto.AdminFlag{Admin: user.IsAdmin()})
}

// ToggleAdmin handles PATCH /users/admin/:id, flipping member<->admin.
func (h *UserHandler) ToggleAdmin(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	role, err := h.accounts.ToggleAdmin(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.Message{Message: "User not found"})
		}

		logger.Error("toggling role failed", "id", id, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, dto.RoleResponse{
		Message: "User role updated successfully",
		Role:    role,
	})
}

// SetRole handles PUT /users/role/:id with an explicit role value.
func (h *UserHandler) SetRole(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	var req SetRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "Role is required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "Role is required"})
	}

	if err := h.accounts.SetRole(c.Request().Context(), id, req.Role); err != nil {
		switch {
		case errors.Is(err, dbRepository.ErrNotFound):
			return c.JSON(http.StatusNotFound, dto.Message{Message: "User not found"})
		case errors.Is(err, usecase.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, dto.Message{Message: "Role is required"})
		}

		logger.Error("setting role failed", "id", id, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, dto.RoleResponse{
		Message: "User role updated successfully",
		Role:    req.Role,
	})
}

// Users handles GET /users. Password hashes are already projected out
// at the store.
func (h *UserHandler) Users(c echo.Context) error {
	users, err := h.accounts.Users(c.Request().Context())
	if err != nil {
		logger.Error("listing users failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, users)
}
