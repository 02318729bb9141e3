package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/accounts/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:             "localhost",
		ServerPort:             8080,
		LogLevel:               "error",
		SessionTokenExpiration: time.Hour,
		LockoutMaxAttempts:     3,
		LockoutDuration:        15 * time.Minute,
		PasswordHashAlgorithm:  "bcrypt",
		PasswordHashBcryptCost: 4,
		MetricsEnabled:         false,
	}
}

func TestContainer_LazySingletons(t *testing.T) {
	container := NewContainer(testConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	first, err := container.AuthUseCase()
	require.NoError(t, err)
	second, err := container.AuthUseCase()
	require.NoError(t, err)
	assert.Same(t, first, second)

	repoFirst, err := container.AccountRepository()
	require.NoError(t, err)
	repoSecond, err := container.AccountRepository()
	require.NoError(t, err)
	assert.Same(t, repoFirst, repoSecond)

	assert.Same(t, container.Logger(), container.Logger())
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainer_MetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsNamespace = "accounts"
	cfg.MetricsPort = 8081

	container := NewContainer(cfg)
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.NotNil(t, provider)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.NotNil(t, metricsServer)
}

func TestContainer_HTTPServer(t *testing.T) {
	container := NewContainer(testConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	server, err := container.HTTPServer()
	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestContainer_InvalidPasswordAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.PasswordHashAlgorithm = "md5"

	container := NewContainer(cfg)

	_, err := container.PasswordService()
	require.Error(t, err)

	// The error is sticky across accesses.
	_, err = container.AuthUseCase()
	assert.Error(t, err)
}
