// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	auditUseCase "github.com/pointward/gateway/internal/audit/usecase"
	authService "github.com/pointward/gateway/internal/auth/service"
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
	recognitionBackend "github.com/pointward/gateway/internal/backend/recognition"
	cashierHTTP "github.com/pointward/gateway/internal/cashier/http"
	cashierUseCase "github.com/pointward/gateway/internal/cashier/usecase"
	"github.com/pointward/gateway/internal/config"
	"github.com/pointward/gateway/internal/database"
	"github.com/pointward/gateway/internal/http"
	"github.com/pointward/gateway/internal/metrics"
	recognitionHTTP "github.com/pointward/gateway/internal/recognition/http"
	recognitionUseCase "github.com/pointward/gateway/internal/recognition/usecase"
	shopHTTP "github.com/pointward/gateway/internal/shop/http"
	shopService "github.com/pointward/gateway/internal/shop/service"
	shopUseCase "github.com/pointward/gateway/internal/shop/usecase"
	userHTTP "github.com/pointward/gateway/internal/user/http"
	userUseCase "github.com/pointward/gateway/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Metrics
	metricsProvider    *metrics.Provider
	recognitionMetrics metrics.RecognitionMetrics
	upstreamMetrics    metrics.UpstreamMetrics

	// Capability tokens
	tokenCodec authService.TokenCodec

	// Downstream clients
	identityClient    *identityBackend.Client
	recognitionClient *recognitionBackend.Client
	inventoryClient   *inventoryBackend.Client
	ledgerClient      *ledgerBackend.Client

	// Audit
	eventRepository auditUseCase.EventRepository
	recorder        auditUseCase.Recorder

	// Services
	sheetParser shopService.SheetParser

	// Use cases
	userUC        userUseCase.UserUseCase
	cashierUC     cashierUseCase.CashierUseCase
	shopUC        shopUseCase.ShopUseCase
	recognitionUC recognitionUseCase.RecognitionUseCase

	// Handlers
	userHandler        *userHTTP.UserHandler
	cashierHandler     *cashierHTTP.CashierHandler
	shopHandler        *shopHTTP.ShopHandler
	recognitionHandler *recognitionHTTP.RecognitionHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                     sync.Mutex
	loggerInit             sync.Once
	dbInit                 sync.Once
	metricsProviderInit    sync.Once
	recognitionMetricsInit sync.Once
	upstreamMetricsInit    sync.Once
	tokenCodecInit         sync.Once
	identityClientInit     sync.Once
	recognitionClientInit  sync.Once
	inventoryClientInit    sync.Once
	ledgerClientInit       sync.Once
	eventRepositoryInit    sync.Once
	recorderInit           sync.Once
	sheetParserInit        sync.Once
	userUCInit             sync.Once
	cashierUCInit          sync.Once
	shopUCInit             sync.Once
	recognitionUCInit      sync.Once
	userHandlerInit        sync.Once
	cashierHandlerInit     sync.Once
	shopHandlerInit        sync.Once
	recognitionHandlerInit sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection for the audit event store.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TokenCodec returns the capability token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		if c.config.TokenSecret == "" {
			c.initErrors["tokenCodec"] = fmt.Errorf("TOKEN_SECRET is required")
			return
		}
		c.tokenCodec = authService.NewTokenCodec(c.config.TokenSecret, c.config.TokenExpiration)
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// MetricsProvider returns the metrics provider with Prometheus exporter.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// RecognitionMetrics returns the recognition pipeline metrics. A no-op
// implementation is returned when metrics are disabled.
func (c *Container) RecognitionMetrics() (metrics.RecognitionMetrics, error) {
	c.recognitionMetricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			c.recognitionMetrics = metrics.NewNoOpRecognitionMetrics()
			return
		}

		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["recognitionMetrics"] = err
			return
		}

		recognitionMetrics, err := metrics.NewRecognitionMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["recognitionMetrics"] = err
			return
		}
		c.recognitionMetrics = recognitionMetrics
	})
	if storedErr, exists := c.initErrors["recognitionMetrics"]; exists {
		return nil, storedErr
	}
	return c.recognitionMetrics, nil
}

// UpstreamMetrics returns the downstream call metrics. A no-op implementation
// is returned when metrics are disabled.
func (c *Container) UpstreamMetrics() (metrics.UpstreamMetrics, error) {
	c.upstreamMetricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			c.upstreamMetrics = metrics.NewNoOpUpstreamMetrics()
			return
		}

		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["upstreamMetrics"] = err
			return
		}

		upstreamMetrics, err := metrics.NewUpstreamMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["upstreamMetrics"] = err
			return
		}
		c.upstreamMetrics = upstreamMetrics
	})
	if storedErr, exists := c.initErrors["upstreamMetrics"]; exists {
		return nil, storedErr
	}
	return c.upstreamMetrics, nil
}

// HTTPServer returns the public API server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}

		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initHTTPServer creates the API server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}
	cashierHandler, err := c.CashierHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get cashier handler for http server: %w", err)
	}
	shopHandler, err := c.ShopHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get shop handler for http server: %w", err)
	}
	recognitionHandler, err := c.RecognitionHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get recognition handler for http server: %w", err)
	}

	var metricsMiddleware gin.HandlerFunc
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	handlers := http.Handlers{
		User:        userHandler,
		Cashier:     cashierHandler,
		Shop:        shopHandler,
		Recognition: recognitionHandler,
	}

	return http.NewServer(c.config, tokenCodec, handlers, metricsMiddleware, c.Logger()), nil
}
