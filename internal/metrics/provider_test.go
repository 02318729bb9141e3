package metrics

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("accounts")
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.MeterProvider())

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("accounts")
	require.NoError(t, err)
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()

	provider.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
}
