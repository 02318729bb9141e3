package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordService(t *testing.T) {
	t.Run("bcrypt", func(t *testing.T) {
		passwords, err := NewPasswordService(AlgorithmBcrypt, bcrypt.MinCost)
		require.NoError(t, err)
		assert.IsType(t, &bcryptPasswordService{}, passwords)
	})

	t.Run("bcrypt with non-positive cost uses the default", func(t *testing.T) {
		passwords, err := NewPasswordService(AlgorithmBcrypt, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultBcryptCost, passwords.(*bcryptPasswordService).cost)
	})

	t.Run("bcrypt with out of range cost fails", func(t *testing.T) {
		_, err := NewPasswordService(AlgorithmBcrypt, bcrypt.MaxCost+1)
		assert.Error(t, err)
	})

	t.Run("argon2id", func(t *testing.T) {
		passwords, err := NewPasswordService(AlgorithmArgon2id, 0)
		require.NoError(t, err)
		assert.IsType(t, &argon2PasswordService{}, passwords)
	})

	t.Run("unsupported algorithm fails", func(t *testing.T) {
		_, err := NewPasswordService("md5", 0)
		assert.Error(t, err)
	})
}

func TestPasswordService(t *testing.T) {
	algorithms := []struct {
		name       string
		bcryptCost int
	}{
		{name: AlgorithmBcrypt, bcryptCost: bcrypt.MinCost},
		{name: AlgorithmArgon2id},
	}

	for _, algorithm := range algorithms {
		t.Run(algorithm.name, func(t *testing.T) {
			passwords, err := NewPasswordService(algorithm.name, algorithm.bcryptCost)
			require.NoError(t, err)

			hash, err := passwords.Hash("Str0ng!Pass")
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotContains(t, hash, "Str0ng!Pass")

			assert.True(t, passwords.Compare("Str0ng!Pass", hash))
			assert.False(t, passwords.Compare("wrong-password", hash))
			assert.False(t, passwords.Compare("Str0ng!Pass", "not-a-hash"))

			secondHash, err := passwords.Hash("Str0ng!Pass")
			require.NoError(t, err)
			assert.NotEqual(t, hash, secondHash)
		})
	}
}
