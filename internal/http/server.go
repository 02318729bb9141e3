// Package http provides the API server, the metrics server, and the shared
// Gin middleware stack.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/accounts/internal/auth/http"
	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
	"github.com/allisson/accounts/internal/config"
	"github.com/allisson/accounts/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server          *http.Server
	router          *gin.Engine
	cfg             *config.Config
	authHandler     *authHTTP.AuthHandler
	authUseCase     authUseCase.AuthUseCase
	metricsProvider *metrics.Provider
	logger          *slog.Logger
}

// NewServer creates the API server with all routes and middleware configured.
func NewServer(
	cfg *config.Config,
	authHandler *authHTTP.AuthHandler,
	useCase authUseCase.AuthUseCase,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	s := &Server{
		cfg:             cfg,
		authHandler:     authHandler,
		authUseCase:     useCase,
		metricsProvider: metricsProvider,
		logger:          logger,
	}
	s.router = s.SetupRouter()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// SetupRouter builds the Gin engine with the middleware stack and all routes.
func (s *Server) SetupRouter() *gin.Engine {
	gin.SetMode(s.cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.cfg.MetricsEnabled && s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.metricsProvider.MeterProvider(), s.cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	public := router.Group("/")
	if s.cfg.RateLimitLoginEnabled {
		public.Use(authHTTP.LoginRateLimitMiddleware(
			s.cfg.RateLimitLoginRequestsPerSec,
			s.cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	public.POST("/register", s.authHandler.RegisterHandler)
	public.POST("/login", s.authHandler.LoginHandler)

	authenticated := router.Group("/")
	authenticated.Use(authHTTP.AuthenticationMiddleware(s.authUseCase, s.logger))
	authenticated.POST("/logout", s.authHandler.LogoutHandler)
	authenticated.GET("/me", s.authHandler.MeHandler)

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness to serve traffic. All state is held in
// process memory, so the service is ready as soon as it is up.
func (s *Server) readinessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"components": gin.H{
			"store": "ok",
		},
	})
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
