package service

import (
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	apperrors "github.com/allisson/accounts/internal/errors"
)

const (
	// signingSecretSize is the size in bytes of the per-process signing secret.
	signingSecretSize = 64

	// revocationSweepInterval is how often expired entries are pruned from the
	// revocation set. Once a token's expiry has passed, natural expiry rejects
	// it regardless of revocation, so the entry can be dropped.
	revocationSweepInterval = 5 * time.Minute
)

// sessionService implements SessionService using HMAC-SHA256 signed JWTs.
//
// Revoked tokens are tracked by their raw string in an append-only set that is
// consulted on every verification before the signature check. The set is
// process-local and never persisted; a restart also rotates the signing
// secret, which invalidates every outstanding token anyway.
type sessionService struct {
	secret []byte
	ttl    time.Duration

	mu sync.RWMutex
	// revoked maps raw token -> token expiry, kept so the janitor can prune
	// entries that natural expiry already rejects.
	revoked map[string]time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// NewSessionService creates a SessionService with a freshly generated signing
// secret and the given token TTL. A background janitor prunes expired
// revocation entries; call Close to stop it.
func NewSessionService(ttl time.Duration) (SessionService, error) {
	return newSessionService(ttl, revocationSweepInterval)
}

func newSessionService(ttl time.Duration, sweepInterval time.Duration) (*sessionService, error) {
	secret := make([]byte, signingSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate signing secret")
	}

	s := &sessionService{
		secret:  secret,
		ttl:     ttl,
		revoked: make(map[string]time.Time),
		done:    make(chan struct{}),
	}

	go s.sweepRevoked(sweepInterval)

	return s, nil
}

// Issue mints a signed token bound to the email, valid for the configured TTL.
func (s *sessionService) Issue(email string) (*authDomain.Session, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.Must(uuid.NewV7()).String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign session token")
	}

	return &authDomain.Session{
		Token:     token,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify validates a presented token and returns the bound email.
// Revocation is checked first; a revoked token fails ErrSessionRevoked even if
// its signature and expiry are otherwise valid.
func (s *sessionService) Verify(token string) (string, error) {
	s.mu.RLock()
	_, isRevoked := s.revoked[token]
	s.mu.RUnlock()

	if isRevoked {
		return "", authDomain.ErrSessionRevoked
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", authDomain.ErrSessionExpired
		}
		return "", authDomain.ErrSessionInvalid
	}

	if !parsed.Valid || claims.Subject == "" {
		return "", authDomain.ErrSessionInvalid
	}

	return claims.Subject, nil
}

// Revoke adds a token to the revocation set. Idempotent; the token stays
// revoked until the process exits. Tokens that no longer parse are kept for a
// full TTL so the set entry outlives any possible validity.
func (s *sessionService) Revoke(token string) {
	expiresAt := time.Now().UTC().Add(s.ttl)

	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, s.keyFunc); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.revoked[token]; exists {
		return
	}
	s.revoked[token] = expiresAt
}

// Close stops the revocation janitor. Safe to call more than once.
func (s *sessionService) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// keyFunc validates the signing method and returns the process secret.
func (s *sessionService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, authDomain.ErrSessionInvalid
	}
	return s.secret, nil
}

// sweepRevoked periodically removes revocation entries whose token expiry has
// passed. Natural expiry already rejects those tokens, so dropping the entry
// keeps the set bounded without weakening revocation.
func (s *sessionService) sweepRevoked(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now().UTC()
			s.mu.Lock()
			for token, expiresAt := range s.revoked {
				if expiresAt.Before(now) {
					delete(s.revoked, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
