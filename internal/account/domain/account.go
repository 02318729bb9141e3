// Package domain defines the core account domain entities and types.
package domain

import (
	"time"

	"github.com/allisson/accounts/internal/errors"
)

// Account represents a registered identity keyed by its email address.
// The email is case-sensitive and unique across the store. PasswordHash is
// the only field that may change after creation.
type Account struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// Domain-specific errors for account operations.
var (
	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrAccountAlreadyExists indicates an account with the same email already
	// exists. The message is part of the registration API contract.
	ErrAccountAlreadyExists = errors.WithMessage(errors.ErrConflict, "Email already registered")
)
