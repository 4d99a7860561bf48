package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authDomain "github.com/pointward/gateway/internal/auth/domain"
	authHTTP "github.com/pointward/gateway/internal/auth/http"
	authService "github.com/pointward/gateway/internal/auth/service"
	cashierHTTP "github.com/pointward/gateway/internal/cashier/http"
	"github.com/pointward/gateway/internal/config"
	recognitionHTTP "github.com/pointward/gateway/internal/recognition/http"
	shopHTTP "github.com/pointward/gateway/internal/shop/http"
	userHTTP "github.com/pointward/gateway/internal/user/http"
)

// Handlers bundles the route handlers the server mounts.
type Handlers struct {
	User        *userHTTP.UserHandler
	Cashier     *cashierHTTP.CashierHandler
	Shop        *shopHTTP.ShopHandler
	Recognition *recognitionHTTP.RecognitionHandler
}

// Server is the public API server. Routes are grouped by the privilege tier
// they require; tiers are matched by equality, so each group admits exactly
// one tier.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server and mounts all routes.
// metricsMiddleware may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	tokenCodec authService.TokenCodec,
	handlers Handlers,
	metricsMiddleware gin.HandlerFunc,
	logger *slog.Logger,
) *Server {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsMiddleware != nil {
		router.Use(metricsMiddleware)
	}
	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	registerRoutes(router, cfg, tokenCodec, handlers, logger)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// registerRoutes mounts the versioned API grouped by privilege tier.
func registerRoutes(
	router *gin.Engine,
	cfg *config.Config,
	tokenCodec authService.TokenCodec,
	handlers Handlers,
	logger *slog.Logger,
) {
	v1 := router.Group("/v1")

	// Unauthenticated surface: logins, registration and face resolution all
	// run before the caller has a token. Rate limited per IP when enabled.
	public := v1.Group("")
	if cfg.RateLimitLoginEnabled {
		public.Use(RateLimitMiddleware(cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, logger))
	}
	public.POST("/users/login", handlers.User.LoginHandler)
	public.POST("/users", handlers.User.CreateHandler)
	public.POST("/shops/login", handlers.Shop.LoginHandler)
	public.POST("/cashiers/login", handlers.Cashier.LoginHandler)
	public.POST("/recognitions", handlers.Recognition.ResolveHandler)

	// Customer-facing routes.
	user := v1.Group("", authHTTP.RequireLevel(tokenCodec, authDomain.UserLevel, logger))
	user.GET("/users/me", handlers.User.GetSelfHandler)
	user.GET("/users/me/transactions", handlers.User.TransactionsHandler)
	user.GET("/users/me/balances", handlers.User.BalancesHandler)

	// Register-facing routes.
	cashier := v1.Group("", authHTTP.RequireLevel(tokenCodec, authDomain.CashierLevel, logger))
	cashier.GET("/inventory", handlers.Cashier.InventoryHandler)
	cashier.GET("/users/lookup", handlers.Cashier.LookupHandler)
	cashier.GET("/items/:id", handlers.Cashier.ItemDetailsHandler)
	cashier.POST("/transactions", handlers.Cashier.CreateTransactionHandler)
	cashier.POST("/recognitions/merge", handlers.Recognition.MergeHandler)
	cashier.POST("/recognitions/confusion", handlers.Recognition.ConfusionHandler)

	// Store-management routes.
	shop := v1.Group("", authHTTP.RequireLevel(tokenCodec, authDomain.StoreManagementLevel, logger))
	shop.GET("/shops/stats", handlers.Shop.StatsHandler)
	shop.POST("/cashiers", handlers.Shop.CreateCashierHandler)
	shop.POST("/inventory/items", handlers.Shop.UploadInventoryHandler)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
