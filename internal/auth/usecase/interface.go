// Package usecase implements the authentication business logic: registration,
// login with lockout enforcement, logout, and request authentication.
package usecase

import (
	"context"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	authDomain "github.com/allisson/accounts/internal/auth/domain"
)

// RegisterInput contains the input data for account registration.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginInput contains the input data for login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput contains the issued session and the authenticated account.
type LoginOutput struct {
	Session *authDomain.Session
	Account *accountDomain.Account
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create stores a new account. Returns ErrAccountAlreadyExists if the
	// email is already registered.
	Create(ctx context.Context, account *accountDomain.Account) error

	// GetByEmail retrieves an account by email. Returns ErrAccountNotFound
	// if not found.
	GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error)

	// UpdatePassword replaces the stored password hash for an existing account.
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
}

// AuthUseCase defines the authentication business logic operations.
type AuthUseCase interface {
	// Register validates the input, hashes the password, and stores a new
	// account. The email is stored exactly as submitted.
	Register(ctx context.Context, input RegisterInput) (*accountDomain.Account, error)

	// Login verifies the credentials and issues a session token.
	//
	// An unknown email and a wrong password both fail with the same
	// indistinguishable error. A wrong password for an existing account
	// counts toward the lockout threshold; once the account is locked,
	// every attempt fails with AccountLockedError until the lock expires,
	// without the password being checked.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout revokes the session token for the rest of the process lifetime.
	// Callers are expected to have authenticated the token first.
	Logout(ctx context.Context, token string) error

	// Authenticate validates a presented session token and returns the bound
	// email. Every failure mode (missing, malformed, expired, revoked)
	// collapses into the same unauthenticated error; the specific kind is
	// only logged.
	Authenticate(ctx context.Context, token string) (string, error)

	// Profile retrieves the account for an authenticated email.
	Profile(ctx context.Context, email string) (*accountDomain.Account, error)
}
