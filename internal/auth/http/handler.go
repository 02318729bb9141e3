package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/accounts/internal/auth/http/dto"
	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
	"github.com/allisson/accounts/internal/httputil"
)

// AuthHandler handles HTTP requests for registration, login, logout, and the
// authenticated profile endpoint.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(useCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /register - No authentication required.
// Returns 201 Created with a confirmation message.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input := authUseCase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if _, err := h.authUseCase.Register(c.Request.Context(), input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Registration successful"})
}

// LoginHandler verifies credentials and issues a session token.
// POST /login - No authentication required.
// Returns 200 OK with the token and the user's public fields.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input := authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		Token: output.Session.Token,
		User: dto.UserResponse{
			Email:     output.Account.Email,
			FirstName: output.Account.FirstName,
			LastName:  output.Account.LastName,
		},
	}

	c.JSON(http.StatusOK, response)
}

// LogoutHandler revokes the session token that authenticated the request.
// POST /logout - Requires authentication.
// Returns 200 OK with a confirmation message.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token, _ := GetSessionToken(c.Request.Context())

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

// MeHandler returns the authenticated user's profile.
// GET /me - Requires authentication.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	email, _ := GetAccountEmail(c.Request.Context())

	account, err := h.authUseCase.Profile(c.Request.Context(), email)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MeResponse{
		User: dto.UserResponse{
			Email:     account.Email,
			FirstName: account.FirstName,
			LastName:  account.LastName,
		},
	}

	c.JSON(http.StatusOK, response)
}
