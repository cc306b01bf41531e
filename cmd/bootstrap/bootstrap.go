package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hospital-booking/config"
	deliveryHttp "go-hospital-booking/internal/delivery/http"
	"go-hospital-booking/internal/delivery/http/handler"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/infrastructure/cache"
	"go-hospital-booking/internal/infrastructure/database"
	"go-hospital-booking/internal/repository"
	"go-hospital-booking/internal/service"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/jwt"
	"go-hospital-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	facilityRepo := repository.NewFacilityRepository()
	providerRepo := repository.NewProviderRepository()
	slotRepo := repository.NewSlotAssignmentRepository()
	consultationRepo := repository.NewConsultationRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	slotLocker := service.NewRedisSlotLocker(redisClient, log, cfg.Booking.SlotLockTTL)
	wizardStore := service.NewWizardStore(redisClient, log, cfg.Booking.WizardSessionTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient, auditService)
	facilityUsecase := usecase.NewFacilityUsecase(db, log, facilityRepo, auditService)
	providerUsecase := usecase.NewProviderUsecase(db, log, providerRepo, facilityRepo, slotRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, providerRepo, slotRepo, consultationRepo, cfg.Booking.DefaultConsultationMinutes)
	bookingUsecase := usecase.NewBookingUsecase(db, log, providerRepo, slotRepo, consultationRepo, slotLocker, auditService, cfg.Booking.DefaultConsultationMinutes)
	assignmentUsecase := usecase.NewAssignmentUsecase(db, log, providerRepo, slotRepo, consultationRepo, auditService, cfg.Booking.DefaultConsultationMinutes)
	wizardUsecase := usecase.NewWizardUsecase(log, wizardStore, providerUsecase, availabilityUsecase, bookingUsecase)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	facilityHandler := handler.NewFacilityHandler(facilityUsecase, customValidator)
	providerHandler := handler.NewProviderHandler(providerUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	consultationHandler := handler.NewConsultationHandler(bookingUsecase, customValidator)
	assignmentHandler := handler.NewAssignmentHandler(assignmentUsecase, customValidator)
	wizardHandler := handler.NewWizardHandler(wizardUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		facilityHandler,
		providerHandler,
		availabilityHandler,
		consultationHandler,
		assignmentHandler,
		wizardHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
