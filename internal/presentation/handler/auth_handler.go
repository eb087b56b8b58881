package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/application/usecase"
	"mediashelf/internal/application/usecase/abstraction"
	"mediashelf/internal/domain/dto"
	"mediashelf/internal/domain/model"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/pkg/logger"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Photo    string `json:"photo"`
	Role     string `json:"role" validate:"omitempty,oneof=member admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	accounts abstraction.AccountManager
}

func NewAuthHandler(accounts abstraction.AccountManager) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  req.Role,
	}

	id, signed, err := h.accounts.Register(c.Request().Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, dto.Message{Message: "User already exists"})
		}

		logger.Error("registration failed", "email", req.Email, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  id,
		Token:   signed,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}

	signed, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, dbRepository.ErrNotFound):
			return c.JSON(http.StatusBadRequest, dto.Message{Message: "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, dto.Message{Message: "Invalid credentials"})
		}

		logger.Error("login failed", "email", req.Email, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   signed,
	})
}
