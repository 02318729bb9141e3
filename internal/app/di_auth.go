package app

import (
	"fmt"

	authHTTP "github.com/allisson/accounts/internal/auth/http"
	authService "github.com/allisson/accounts/internal/auth/service"
	authUsecase "github.com/allisson/accounts/internal/auth/usecase"
)

// PasswordService returns the password hashing service instance.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	c.passwordServiceInit.Do(func() {
		service, err := authService.NewPasswordService(
			c.config.PasswordHashAlgorithm,
			c.config.PasswordHashBcryptCost,
		)
		if err != nil {
			c.initErrors["passwordService"] = err
			return
		}
		c.passwordService = service
	})
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// SessionService returns the session token service instance.
func (c *Container) SessionService() (authService.SessionService, error) {
	c.sessionServiceInit.Do(func() {
		service, err := authService.NewSessionService(c.config.SessionTokenExpiration)
		if err != nil {
			c.initErrors["sessionService"] = err
			return
		}
		c.sessionService = service
	})
	if storedErr, exists := c.initErrors["sessionService"]; exists {
		return nil, storedErr
	}
	return c.sessionService, nil
}

// LockoutService returns the login lockout tracker instance.
func (c *Container) LockoutService() (authService.LockoutService, error) {
	c.lockoutServiceInit.Do(func() {
		c.lockoutService = authService.NewLockoutService(
			c.config.LockoutMaxAttempts,
			c.config.LockoutDuration,
		)
	})
	return c.lockoutService, nil
}

// AuthUseCase returns the auth use case instance, decorated with metrics.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler creates the HTTP handler for the auth endpoints.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(useCase, c.Logger()), nil
}

// initAuthUseCase creates the auth use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	accountRepo, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for auth use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for auth use case: %w", err)
	}

	sessionService, err := c.SessionService()
	if err != nil {
		return nil, fmt.Errorf("failed to get session service for auth use case: %w", err)
	}

	lockoutService, err := c.LockoutService()
	if err != nil {
		return nil, fmt.Errorf("failed to get lockout service for auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	useCase := authUsecase.NewAuthUseCase(
		accountRepo,
		passwordService,
		sessionService,
		lockoutService,
		c.config.LockoutMaxAttempts,
		c.Logger(),
	)

	return authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics), nil
}
