package usecase

import "errors"

var (
	// ErrEmailTaken means registration hit an existing account.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials means the password check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole means a role outside the enumerated set was requested.
	ErrInvalidRole = errors.New("invalid role")
)
