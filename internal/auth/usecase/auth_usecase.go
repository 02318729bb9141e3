package usecase

import (
	"context"
	"log/slog"

	validation "github.com/jellydator/validation"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	authDomain "github.com/allisson/accounts/internal/auth/domain"
	"github.com/allisson/accounts/internal/auth/service"
	apperrors "github.com/allisson/accounts/internal/errors"
	appValidation "github.com/allisson/accounts/internal/validation"
)

// Caller-visible messages for missing input. These take precedence over field
// level validation so a fully empty request reports the blanket message.
var (
	errAllFieldsRequired       = apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields are required")
	errEmailPasswordRequired   = apperrors.WithMessage(apperrors.ErrInvalidInput, "Email and password are required")
	errAccessTokenRequired     = apperrors.WithMessage(apperrors.ErrUnauthorized, "Access token required")
	errInvalidOrExpiredSession = apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token")
)

// authUseCase handles authentication business logic.
type authUseCase struct {
	accountRepo AccountRepository
	passwords   service.PasswordService
	sessions    service.SessionService
	lockout     service.LockoutService
	maxAttempts int
	logger      *slog.Logger
}

// NewAuthUseCase creates an AuthUseCase. maxAttempts is the number of failed
// login attempts after which an account locks; it must match the lockout
// service configuration so the attempts-remaining message stays accurate.
func NewAuthUseCase(
	accountRepo AccountRepository,
	passwords service.PasswordService,
	sessions service.SessionService,
	lockout service.LockoutService,
	maxAttempts int,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		accountRepo: accountRepo,
		passwords:   passwords,
		sessions:    sessions,
		lockout:     lockout,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// validateRegisterInput validates the registration input using jellydator/validation.
func (uc *authUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
		validation.Field(&input.FirstName,
			validation.Required.Error("firstName is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("firstName must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("lastName is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("lastName must be between 1 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register validates the input, hashes the password, and stores the account.
func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*accountDomain.Account, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, errAllFieldsRequired
	}

	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	// Hashing runs before any store access so it never holds a lock.
	passwordHash, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &accountDomain.Account{
		Email:        input.Email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "account registered", slog.String("email", account.Email))

	return account, nil
}

// Login verifies the credentials, enforces the lockout policy, and issues a
// session token.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errEmailPasswordRequired
	}

	// While a lock is active the password is never checked.
	if locked, remaining := uc.lockout.IsLocked(input.Email); locked {
		return nil, &authDomain.AccountLockedError{Remaining: remaining}
	}

	account, err := uc.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			// Unknown emails are not tracked by the lockout service.
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwords.Compare(input.Password, account.PasswordHash) {
		count := uc.lockout.RecordFailure(input.Email)
		remaining := uc.maxAttempts - count
		if remaining < 0 {
			remaining = 0
		}

		uc.logger.WarnContext(ctx, "login failed",
			slog.String("email", input.Email),
			slog.Int("failed_attempts", count),
		)

		return nil, &authDomain.InvalidCredentialsError{AttemptsRemaining: remaining}
	}

	uc.lockout.RecordSuccess(input.Email)

	session, err := uc.sessions.Issue(account.Email)
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "login succeeded", slog.String("email", account.Email))

	return &LoginOutput{Session: session, Account: account}, nil
}

// Logout revokes the session token. Idempotent.
func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errAccessTokenRequired
	}

	uc.sessions.Revoke(token)
	return nil
}

// Authenticate validates a presented session token and returns the bound
// email. The specific failure kind is logged but never exposed to the caller.
func (uc *authUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errAccessTokenRequired
	}

	email, err := uc.sessions.Verify(token)
	if err != nil {
		uc.logger.DebugContext(ctx, "session verification failed", slog.String("reason", err.Error()))
		return "", errInvalidOrExpiredSession
	}

	return email, nil
}

// Profile retrieves the account for an authenticated email.
func (uc *authUseCase) Profile(ctx context.Context, email string) (*accountDomain.Account, error) {
	return uc.accountRepo.GetByEmail(ctx, email)
}
