package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	authDomain "github.com/allisson/accounts/internal/auth/domain"
	"github.com/allisson/accounts/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// mockAuthUseCase is a mock implementation of AuthUseCase for decorator tests.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, input RegisterInput) (*accountDomain.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) Profile(ctx context.Context, email string) (*accountDomain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

func TestAuthUseCaseWithMetrics_Login(t *testing.T) {
	t.Run("successful login records success metrics", func(t *testing.T) {
		ctx := context.Background()
		next := &mockAuthUseCase{}
		businessMetrics := &mockBusinessMetrics{}

		input := LoginInput{Email: "alice@example.com", Password: "Str0ng!Pass"}
		output := &LoginOutput{Session: &authDomain.Session{Token: "session-token"}}

		next.On("Login", ctx, input).Return(output, nil)
		businessMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return()
		businessMetrics.On(
			"RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success",
		).Return()

		decorated := NewAuthUseCaseWithMetrics(next, businessMetrics)
		got, err := decorated.Login(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, output, got)
		businessMetrics.AssertExpectations(t)
	})

	t.Run("failed login records error metrics", func(t *testing.T) {
		ctx := context.Background()
		next := &mockAuthUseCase{}
		businessMetrics := &mockBusinessMetrics{}

		input := LoginInput{Email: "alice@example.com", Password: "wrong-password"}

		next.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials)
		businessMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return()
		businessMetrics.On(
			"RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error",
		).Return()

		decorated := NewAuthUseCaseWithMetrics(next, businessMetrics)
		got, err := decorated.Login(ctx, input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		businessMetrics.AssertExpectations(t)
	})
}

func TestAuthUseCaseWithMetrics_Authenticate(t *testing.T) {
	ctx := context.Background()
	next := &mockAuthUseCase{}
	businessMetrics := &mockBusinessMetrics{}

	next.On("Authenticate", ctx, "session-token").Return("alice@example.com", nil)
	businessMetrics.On("RecordOperation", ctx, "auth", "authenticate", "success").Return()
	businessMetrics.On(
		"RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "success",
	).Return()

	decorated := NewAuthUseCaseWithMetrics(next, businessMetrics)
	email, err := decorated.Authenticate(ctx, "session-token")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
	businessMetrics.AssertExpectations(t)
}
