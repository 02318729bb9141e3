// Package service provides authentication-related services: adaptive password
// hashing, signed session tokens with in-process revocation, and the
// failed-attempt lockout tracker.
package service

import (
	"time"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
)

// PasswordService hashes raw passwords with a deliberately expensive adaptive
// algorithm and verifies them in constant time. Implementations must never
// log or return the raw password.
type PasswordService interface {
	// Hash returns a one-way salted hash of the raw password.
	Hash(rawPassword string) (string, error)

	// Compare reports whether rawPassword matches the stored hash using a
	// constant-time comparison.
	Compare(rawPassword string, passwordHash string) bool
}

// SessionService issues, verifies, and revokes signed session tokens.
//
// The signing secret is generated once per process and held only in memory,
// so every previously issued token becomes unverifiable after a restart.
// This is an accepted limitation of the in-memory design, not a bug.
type SessionService interface {
	// Issue mints a new token bound to the email with the configured TTL.
	Issue(email string) (*authDomain.Session, error)

	// Verify validates a presented token and returns the bound email.
	// Fails with ErrSessionRevoked, ErrSessionExpired, or ErrSessionInvalid.
	Verify(token string) (string, error)

	// Revoke permanently invalidates a token for the rest of the process
	// lifetime. Idempotent.
	Revoke(token string)

	// Close stops background maintenance. Safe to call more than once.
	Close()
}

// LockoutService tracks failed login attempts per identifier and enforces a
// temporary lock once the configured maximum is reached.
type LockoutService interface {
	// IsLocked reports whether the identifier is currently locked and, if so,
	// how long until the lock expires.
	IsLocked(identifier string) (bool, time.Duration)

	// RecordFailure increments the failure counter and returns the new count.
	// Reaching the maximum sets a lock; further failures while the lock is
	// active never extend the window.
	RecordFailure(identifier string) int

	// RecordSuccess clears the counter and any lock for the identifier.
	RecordSuccess(identifier string)
}
