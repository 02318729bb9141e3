package usecase

import (
	"context"
	"time"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	"github.com/allisson/accounts/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for registration operations.
func (a *authUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterInput,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "register", status)
	a.metrics.RecordDuration(ctx, "auth", "register", time.Since(start), status)

	return account, err
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// Logout records metrics for logout operations.
func (a *authUseCaseWithMetrics) Logout(ctx context.Context, token string) error {
	start := time.Now()
	err := a.next.Logout(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "logout", status)
	a.metrics.RecordDuration(ctx, "auth", "logout", time.Since(start), status)

	return err
}

// Authenticate records metrics for request authentication operations.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (string, error) {
	start := time.Now()
	email, err := a.next.Authenticate(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return email, err
}

// Profile records metrics for profile retrieval operations.
func (a *authUseCaseWithMetrics) Profile(ctx context.Context, email string) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Profile(ctx, email)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "profile", status)
	a.metrics.RecordDuration(ctx, "auth", "profile", time.Since(start), status)

	return account, err
}
