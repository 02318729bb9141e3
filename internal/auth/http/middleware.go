package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
	"github.com/allisson/accounts/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via a Bearer token in the
// Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Validates the token using authUseCase.Authenticate()
// 3. Stores the authenticated email and the presented token in the request context
//
// A missing or malformed header is treated as an empty token, so the use case
// produces the same caller-visible error for every way of not presenting a
// credential. All token failure kinds (malformed, expired, revoked) share one
// response; the specific kind is only logged.
func AuthenticationMiddleware(
	useCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		email, err := useCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithAccountEmail(c.Request.Context(), email)
		ctx = WithSessionToken(ctx, token)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.String("email", email))

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// Returns "" when the header is missing or not in "Bearer <token>" form.
func bearerToken(authHeader string) string {
	const bearerPrefix = "bearer "

	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return authHeader[len(bearerPrefix):]
}
