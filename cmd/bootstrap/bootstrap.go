package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/infrastructure/database"
	"go-doctor-directory/internal/infrastructure/source"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const seedTimeout = 30 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(log, cfg.Log.Level)
	log.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	customValidator := validator.NewValidator()
	catalogCache := cache.NewRedisCatalogCache(redisClient, cfg.Catalog.CacheTTL)

	// Initialize doctor source
	var doctorSource domainRepo.DoctorSource
	switch cfg.Catalog.Source {
	case config.CatalogSourceHTTP:
		doctorSource = source.NewHTTPDoctorSource(cfg.Catalog.URL, cfg.Catalog.ClientTimeout)
		log.WithField("url", cfg.Catalog.URL).Info("Doctor catalog served from HTTP source")
	default:
		db, err := app.initDatabase(cfg, log, customValidator)
		if err != nil {
			app.Close()
			return nil, err
		}
		doctorSource = repository.NewPostgresDoctorSource(db, repository.NewDoctorRepository())
	}

	catalog := service.NewDoctorCatalogService(doctorSource, catalogCache, customValidator, log)
	if cfg.Catalog.SeedFile != "" {
		// A fresh seed must not be shadowed by a list cached before it.
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		if err := catalog.Refresh(ctx); err != nil {
			log.Warnf("Failed to refresh doctor catalog after seed: %+v", err)
		}
		cancel()
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, catalog, customValidator)

	return app, nil
}

// initDatabase connects to PostgreSQL, applies migrations and seeds the
// doctors table when a seed file is configured.
func (app *App) initDatabase(cfg *config.Config, log *logrus.Logger, v *validator.CustomValidator) (*gorm.DB, error) {
	if cfg.DB.Migrate {
		if err := database.RunMigrations(cfg.DB, log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.Catalog.SeedFile != "" {
		seeder := service.NewDoctorSeedService(db, repository.NewDoctorRepository(), v, log)

		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		defer cancel()
		if _, err := seeder.SeedFromFile(ctx, cfg.Catalog.SeedFile); err != nil {
			return nil, fmt.Errorf("failed to seed doctors: %w", err)
		}
	}

	return db, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

func applyLogLevel(log *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, keeping %s", level, log.GetLevel())
		return
	}
	log.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, catalog service.DoctorCatalogService, customValidator *validator.CustomValidator) *http.Server {
	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, catalog)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, corsMiddleware, requestLoggerMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
