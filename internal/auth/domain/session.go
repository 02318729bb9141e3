// Package domain defines authentication domain models: sessions, lockout
// state, and the error taxonomy for login and token verification.
package domain

import (
	"time"
)

// Session represents an issued session token bound to an account email.
// The token is a signed credential; the service that minted it is the sole
// arbiter of its validity.
type Session struct {
	Token     string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// LockoutState holds the failed-attempt counter and lock expiry for one
// identifier. The identifier may be tracked before (or without) a matching
// account existing.
type LockoutState struct {
	Identifier     string
	FailedAttempts int
	LockedUntil    *time.Time
}

// Locked reports whether the lock expiry exists and is still in the future.
func (s *LockoutState) Locked(now time.Time) bool {
	return s.LockedUntil != nil && now.Before(*s.LockedUntil)
}
