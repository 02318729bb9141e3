package domain

import (
	"fmt"
	"time"

	"github.com/allisson/accounts/internal/errors"
)

// Session verification errors. These kinds are distinguished internally for
// diagnostics; the HTTP boundary collapses all of them into a single
// unauthenticated response so callers cannot probe token state.
var (
	// ErrSessionInvalid indicates the token is malformed or its signature does not verify.
	ErrSessionInvalid = errors.New("session token is invalid")

	// ErrSessionExpired indicates the token expiry has passed.
	ErrSessionExpired = errors.New("session token has expired")

	// ErrSessionRevoked indicates the token was explicitly revoked at logout.
	ErrSessionRevoked = errors.New("session token has been revoked")
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so login responses never reveal whether an account exists.
// The message is part of the login API contract.
var ErrInvalidCredentials = errors.WithMessage(errors.ErrInvalidInput, "Invalid email or password")

// InvalidCredentialsError is the wrong-password variant of
// ErrInvalidCredentials for existing accounts. It carries the number of
// attempts remaining before the account locks, which the login contract
// requires to be caller-visible.
type InvalidCredentialsError struct {
	AttemptsRemaining int
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("Invalid password. %d attempts remaining before lock", e.AttemptsRemaining)
}

func (e *InvalidCredentialsError) Unwrap() error {
	return errors.ErrInvalidInput
}

// AccountLockedError is returned while an account lock is active. Remaining
// is the time left on the lock window.
type AccountLockedError struct {
	Remaining time.Duration
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("Account is locked. Try again in %d minutes", e.RemainingMinutes())
}

func (e *AccountLockedError) Unwrap() error {
	return errors.ErrLocked
}

// RemainingMinutes returns the remaining lock time as whole minutes, rounded
// up so the caller never retries early.
func (e *AccountLockedError) RemainingMinutes() int {
	minutes := int((e.Remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
