package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowcare/clinic/config"
	deliveryHttp "github.com/glowcare/clinic/internal/delivery/http"
	"github.com/glowcare/clinic/internal/delivery/http/handler"
	"github.com/glowcare/clinic/internal/delivery/http/middleware"
	"github.com/glowcare/clinic/internal/gateway"
	"github.com/glowcare/clinic/internal/infrastructure/cache"
	"github.com/glowcare/clinic/internal/infrastructure/database"
	"github.com/glowcare/clinic/internal/repository"
	"github.com/glowcare/clinic/internal/service"
	"github.com/glowcare/clinic/internal/usecase"
	"github.com/glowcare/clinic/pkg/jwt"
	"github.com/glowcare/clinic/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds one service's dependencies. Each clinic binary builds its
// own App; they share this shape and the run loop.
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Reconciler  *service.OutboxReconciler

	name string
	port string
}

// setup loads configuration and connects the service's own database,
// applying its embedded migrations.
func setup(name string, pick func(*config.Config) config.ServiceConfig) (*App, config.ServiceConfig, error) {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, config.ServiceConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	logrus.Info("Configuration loaded successfully")

	svcCfg := pick(cfg)

	db, err := database.NewPostgresConnection(svcCfg.DB)
	if err != nil {
		return nil, config.ServiceConfig{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db, name); err != nil {
		return nil, config.ServiceConfig{}, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		name:   name,
		port:   svcCfg.Port,
	}
	return app, svcCfg, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// NewUserApp wires the user service: auth plus the authorizing proxy in
// front of the appointment and payment services.
func NewUserApp() (*App, error) {
	app, svcCfg, err := setup("user", func(c *config.Config) config.ServiceConfig { return c.User })
	if err != nil {
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(app.Config.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	log := logrus.StandardLogger()
	jwtService := jwt.NewJWTService(app.Config.JWT)
	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	authUsecase := usecase.NewAuthUsecase(app.DB, log, userRepo, jwtService, redisClient)

	appointmentClient := gateway.NewAppointmentClient(app.Config.Appointment.BaseURL, app.Config.Client, log)
	paymentClient := gateway.NewPaymentClient(app.Config.Payment.BaseURL, app.Config.Client, log)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	proxyHandler := handler.NewProxyHandler(appointmentClient, paymentClient)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewUserRouter(authHandler, proxyHandler, authMiddleware, corsMiddleware)
	app.Server = newServer(svcCfg.Port, router.Setup())

	return app, nil
}

// NewAppointmentApp wires the appointment service.
func NewAppointmentApp() (*App, error) {
	app, svcCfg, err := setup("appointment", func(c *config.Config) config.ServiceConfig { return c.Appointment })
	if err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	appointmentRepo := repository.NewAppointmentRepository()
	appointmentUsecase := usecase.NewAppointmentUsecase(app.DB, log, appointmentRepo)

	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewAppointmentRouter(appointmentHandler, corsMiddleware)
	app.Server = newServer(svcCfg.Port, router.Setup())

	return app, nil
}

// NewTreatmentApp wires the treatment service and seeds the default
// catalog on first start.
func NewTreatmentApp() (*App, error) {
	app, svcCfg, err := setup("treatment", func(c *config.Config) config.ServiceConfig { return c.Treatment })
	if err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	treatmentRepo := repository.NewTreatmentRepository()
	appointmentClient := gateway.NewAppointmentClient(app.Config.Appointment.BaseURL, app.Config.Client, log)
	treatmentUsecase := usecase.NewTreatmentUsecase(app.DB, log, treatmentRepo, appointmentClient)

	if err := treatmentUsecase.SeedDefaults(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed treatments: %w", err)
	}

	treatmentHandler := handler.NewTreatmentHandler(treatmentUsecase, customValidator)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewTreatmentRouter(treatmentHandler, corsMiddleware)
	app.Server = newServer(svcCfg.Port, router.Setup())

	return app, nil
}

// NewPaymentApp wires the payment service together with the outbox
// reconciler that retries undelivered appointment confirmations.
func NewPaymentApp() (*App, error) {
	app, svcCfg, err := setup("payment", func(c *config.Config) config.ServiceConfig { return c.Payment })
	if err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	paymentRepo := repository.NewPaymentRepository()
	outboxRepo := repository.NewConfirmationOutboxRepository()
	appointmentClient := gateway.NewAppointmentClient(app.Config.Appointment.BaseURL, app.Config.Client, log)

	paymentUsecase := usecase.NewPaymentUsecase(app.DB, log, paymentRepo, outboxRepo, appointmentClient)

	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewPaymentRouter(paymentHandler, corsMiddleware)
	app.Server = newServer(svcCfg.Port, router.Setup())

	app.Reconciler = service.NewOutboxReconciler(
		app.DB,
		log,
		outboxRepo,
		appointmentClient,
		app.Config.Reconciler.Schedule,
		app.Config.Reconciler.MaxAttempts,
	)

	return app, nil
}

func newServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: handler,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if app.Reconciler != nil {
		if err := app.Reconciler.Start(); err != nil {
			logrus.Fatalf("Failed to start reconciler: %v", err)
		}
	}

	go func() {
		logrus.Infof("%s service starting on port %s", app.name, app.port)
		logrus.Infof("Environment: %s", app.Config.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	if app.Reconciler != nil {
		app.Reconciler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
