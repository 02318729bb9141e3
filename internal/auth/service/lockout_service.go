package service

import (
	"sync"
	"time"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
)

// lockoutService implements LockoutService with a mutex-guarded map keyed by
// identifier. Entries are created on first failure and removed on success, so
// the map only holds identifiers with outstanding failures.
type lockoutService struct {
	maxAttempts  int
	lockDuration time.Duration

	mu      sync.Mutex
	entries map[string]*authDomain.LockoutState
}

// NewLockoutService creates a LockoutService that locks an identifier for
// lockDuration once maxAttempts consecutive failures are recorded.
func NewLockoutService(maxAttempts int, lockDuration time.Duration) LockoutService {
	return &lockoutService{
		maxAttempts:  maxAttempts,
		lockDuration: lockDuration,
		entries:      make(map[string]*authDomain.LockoutState),
	}
}

// IsLocked reports whether the identifier is currently locked and the time
// remaining on the lock.
func (s *lockoutService) IsLocked(identifier string) (bool, time.Duration) {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[identifier]
	if !exists || !entry.Locked(now) {
		return false, 0
	}

	return true, entry.LockedUntil.Sub(now)
}

// RecordFailure increments the failure counter and returns the new count.
// Reaching maxAttempts starts a lock window fixed from this failure; failures
// recorded while a lock is already active neither increment the counter nor
// extend the window.
func (s *lockoutService) RecordFailure(identifier string) int {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[identifier]
	if !exists {
		entry = &authDomain.LockoutState{Identifier: identifier}
		s.entries[identifier] = entry
	}

	if entry.Locked(now) {
		return entry.FailedAttempts
	}

	entry.FailedAttempts++
	if entry.FailedAttempts >= s.maxAttempts {
		lockedUntil := now.Add(s.lockDuration)
		entry.LockedUntil = &lockedUntil
	}

	return entry.FailedAttempts
}

// RecordSuccess clears the failure counter and any lock for the identifier.
func (s *lockoutService) RecordSuccess(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, identifier)
}
