package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/api/handler"
	"github.com/martijn/watchlist/internal/api/middleware"
	"github.com/martijn/watchlist/internal/api/session"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web"
	"github.com/martijn/watchlist/pkg/config"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router      *gin.Engine
	srv         *http.Server
	config      *config.Config
	logger      logrus.FieldLogger
	rateLimiter *middleware.LoginLimiter
}

// NewServer creates a new web server
func NewServer(
	cfg *config.Config,
	logger logrus.FieldLogger,
	authService *service.AuthService,
	ownerService *service.OwnerService,
	movieService *service.MovieService,
) (*Server, error) {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ClientIP only honours X-Forwarded-For from these peers
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := web.Install(router); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	server := &Server{
		router: router,
		config: cfg,
		logger: logger,
	}

	// Global middleware
	router.Use(middleware.RequestLogger(logger))
	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics()
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	router.Use(middleware.ErrorHandlerMiddleware(logger))
	router.Use(session.Middleware(session.NewStore(cfg.SecretKey, cfg.SessionTTL, cfg.CookieSecure)))
	router.Use(middleware.LoadOwner(ownerService))

	router.NoRoute(middleware.NotFound())
	router.NoMethod(middleware.MethodNotAllowed())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	settingsHandler := handler.NewSettingsHandler(ownerService)

	// Public routes
	router.GET("/", movieHandler.Index)
	router.POST("/", movieHandler.Create) // soft-fails for visitors
	router.GET("/login", authHandler.LoginPage)

	loginHandlers := []gin.HandlerFunc{authHandler.Login}
	if cfg.LoginRateLimit > 0 {
		server.rateLimiter = middleware.NewLoginLimiter(cfg.LoginRateLimit, cfg.LoginBurst)
		loginHandlers = append([]gin.HandlerFunc{server.rateLimiter.Middleware()}, loginHandlers...)
	}
	router.POST("/login", loginHandlers...)

	// Protected routes (owner login required)
	owner := router.Group("/")
	owner.Use(middleware.RequireOwner())
	{
		owner.GET("/movie/edit/:id", movieHandler.Edit)
		owner.POST("/movie/edit/:id", movieHandler.Update)
		owner.POST("/movie/delete/:id", movieHandler.Delete)
		owner.GET("/logout", authHandler.Logout)
		owner.GET("/settings", settingsHandler.Show)
		owner.POST("/settings", settingsHandler.Update)
	}

	return server, nil
}

// Handler exposes the routed engine, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.Addr()

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	s.logger.WithField("addr", addr).Info("starting HTTP server")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
