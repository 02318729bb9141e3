// Package repository provides the in-memory credential store.
//
// The service keeps all state in process memory by design: accounts live in a
// map keyed by email and are owned by value, so no entry can outlive the
// repository and no ownership cycles exist. A process restart loses all
// registered accounts.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/allisson/accounts/internal/account/domain"
)

// MemoryAccountRepository stores accounts in a mutex-guarded map. Reads take
// the read lock so lookups do not serialize against each other; all critical
// sections are short map operations (password hashing happens in the caller,
// never under the lock).
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewMemoryAccountRepository creates an empty in-memory account repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

// Create stores a new account keyed by its email.
// Returns domain.ErrAccountAlreadyExists if the email is already registered.
// Sets CreatedAt if the caller left it zero.
func (r *MemoryAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return domain.ErrAccountAlreadyExists
	}

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	r.accounts[account.Email] = *account
	return nil
}

// GetByEmail retrieves an account by its email.
// Returns domain.ErrAccountNotFound if no account exists for the email.
// The returned account is a copy; mutating it does not affect the store.
func (r *MemoryAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[email]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	return &account, nil
}

// UpdatePassword replaces the stored password hash for an existing account.
// The hash is the only mutable field after creation.
func (r *MemoryAccountRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[email]
	if !exists {
		return domain.ErrAccountNotFound
	}

	account.PasswordHash = passwordHash
	r.accounts[email] = account
	return nil
}
