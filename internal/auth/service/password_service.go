package service

import (
	"fmt"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/accounts/internal/errors"
)

// Password hashing algorithm names accepted by NewPasswordService.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// DefaultBcryptCost is the reference work factor for the bcrypt backend.
const DefaultBcryptCost = 12

// bcryptPasswordService implements PasswordService using bcrypt.
type bcryptPasswordService struct {
	cost int
}

// Hash hashes a raw password using bcrypt with the configured cost.
func (s *bcryptPasswordService) Hash(rawPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// Compare performs a constant-time comparison between a raw password and its hash.
func (s *bcryptPasswordService) Compare(rawPassword string, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(rawPassword)) == nil
}

// argon2PasswordService implements PasswordService using Argon2id.
type argon2PasswordService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a raw password using Argon2id.
func (s *argon2PasswordService) Hash(rawPassword string) (string, error) {
	hash, err := s.hasher.Hash([]byte(rawPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Compare performs a constant-time comparison between a raw password and its hash.
func (s *argon2PasswordService) Compare(rawPassword string, passwordHash string) bool {
	ok, err := s.hasher.Verify([]byte(rawPassword), passwordHash)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService for the given algorithm.
// Supported algorithms: "bcrypt" (with the given cost, DefaultBcryptCost when
// non-positive) and "argon2id" (moderate policy).
func NewPasswordService(algorithm string, bcryptCost int) (PasswordService, error) {
	switch algorithm {
	case AlgorithmBcrypt:
		if bcryptCost <= 0 {
			bcryptCost = DefaultBcryptCost
		}
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost out of range: %d", bcryptCost)
		}
		return &bcryptPasswordService{cost: bcryptCost}, nil

	case AlgorithmArgon2id:
		hasher, err := pwdhash.New(
			pwdhash.WithPolicy(pwdhash.PolicyModerate),
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to create password hasher")
		}
		return &argon2PasswordService{hasher: hasher}, nil

	default:
		return nil, fmt.Errorf("unsupported password hash algorithm: %s", algorithm)
	}
}
