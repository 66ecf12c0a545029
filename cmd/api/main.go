package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dralafandy/Cura-dental-app/docs" // Swagger docs
	"github.com/dralafandy/Cura-dental-app/internal/config"
	"github.com/dralafandy/Cura-dental-app/internal/database"
	"github.com/dralafandy/Cura-dental-app/internal/handlers"
	"github.com/dralafandy/Cura-dental-app/internal/jobs"
	"github.com/dralafandy/Cura-dental-app/internal/middleware"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/dralafandy/Cura-dental-app/internal/storage"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Idempotency keys older than this are purged
const idempotencyRetention = 48 * time.Hour

// @title Cura Dental API
// @version 1.0
// @description REST API for the Cura dental clinic: patients, appointments and the clinic/doctor revenue ledger

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get database handle", "error", err)
		os.Exit(1)
	}

	// Initialize storage
	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized blob storage", "driver", cfg.StorageDriver)

	// Initialize repositories
	repos := repository.NewRepositories(db)
	tx := repository.NewTxManager(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, tx, worker, store, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, repos, cfg)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, sqlDB)

	// Setup router
	router := setupRouter(h, repos, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Drain queued audit writes before the database goes away
	worker.Shutdown()
	logger.Info("Background worker stopped")

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, repos *repository.Repositories, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Idempotency(repos.Idempotency))
	{
		v1.GET("/health", h.Health.Index)

		patients := v1.Group("/patients")
		{
			patients.GET("", h.Patient.Index)
			patients.POST("", h.Patient.Create)
			patients.GET("/:patient_id", h.Patient.Show)
			patients.PUT("/:patient_id", h.Patient.Update)
			patients.DELETE("/:patient_id", h.Patient.Delete)
			patients.GET("/:patient_id/image", h.Patient.Image)
			patients.POST("/:patient_id/image", h.Patient.UploadImage)
			patients.GET("/:patient_id/balance", h.Patient.Balance)
			patients.GET("/:patient_id/statement_pdf", h.Patient.StatementPDF)
		}

		doctors := v1.Group("/doctors")
		{
			doctors.GET("", h.Doctor.Index)
			doctors.POST("", h.Doctor.Create)
			doctors.GET("/:doctor_id", h.Doctor.Show)
			doctors.PUT("/:doctor_id", h.Doctor.Update)
			doctors.DELETE("/:doctor_id", h.Doctor.Delete)
		}

		treatments := v1.Group("/treatments")
		{
			treatments.GET("", h.Treatment.Index)
			treatments.POST("", h.Treatment.Create)
			treatments.GET("/:treatment_id", h.Treatment.Show)
			treatments.PUT("/:treatment_id", h.Treatment.Update)
			treatments.DELETE("/:treatment_id", h.Treatment.Delete)
			treatments.GET("/:treatment_id/percentages", h.Percentage.Index)
			treatments.POST("/:treatment_id/percentages", h.Percentage.Create)
		}
		v1.GET("/percentages/resolve", h.Percentage.Resolve)

		appointments := v1.Group("/appointments")
		{
			appointments.GET("", h.Appointment.Index)
			appointments.POST("", h.Appointment.Create)
			appointments.GET("/:appointment_id", h.Appointment.Show)
			appointments.PUT("/:appointment_id", h.Appointment.Update)
			appointments.DELETE("/:appointment_id", h.Appointment.Delete)
			appointments.POST("/:appointment_id/confirm", h.Appointment.Confirm)
			appointments.POST("/:appointment_id/cancel", h.Appointment.Cancel)
			appointments.POST("/:appointment_id/reopen", h.Appointment.Reopen)
		}

		// Payments are append-only: no update or delete routes
		payments := v1.Group("/payments")
		{
			payments.GET("", h.Payment.Index)
			payments.POST("", h.Payment.Create)
			payments.GET("/:payment_id", h.Payment.Show)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", h.Report.Summary)
			reports.GET("/ledger", h.Report.Ledger)
			reports.GET("/ledger_csv", h.Report.LedgerCSV)
			reports.GET("/ledger_xlsx", h.Report.LedgerXLSX)
			reports.GET("/ledger_pdf", h.Report.LedgerPDF)
			reports.GET("/doctor_earnings", h.Report.DoctorEarnings)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", h.Expense.Index)
			expenses.POST("", h.Expense.Create)
			expenses.GET("/:expense_id", h.Expense.Show)
			expenses.PUT("/:expense_id", h.Expense.Update)
			expenses.DELETE("/:expense_id", h.Expense.Delete)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", h.Inventory.Index)
			inventory.POST("", h.Inventory.Create)
			inventory.GET("/:item_id", h.Inventory.Show)
			inventory.PUT("/:item_id", h.Inventory.Update)
			inventory.DELETE("/:item_id", h.Inventory.Delete)
			inventory.POST("/:item_id/adjust", h.Inventory.Adjust)
		}

		v1.GET("/audits", h.Audit.Index)
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, repos *repository.Repositories, cfg *config.Config) {
	// Check that every payment's shares still add up and reference a live appointment
	worker.ScheduleEveryImmediate("reconcile-ledger", cfg.ReconcileInterval, func(ctx context.Context) error {
		logger.Info("[Job] Reconciling ledger...")
		report, err := svcs.Payment.ReconcileLedger(ctx)
		if err != nil {
			return err
		}
		logger.Info("[Job] Ledger reconciled", "scanned", report.Scanned, "unbalanced", len(report.Unbalanced), "orphaned", len(report.Orphaned))
		return nil
	})

	// Purge stale idempotency keys daily
	worker.ScheduleEvery("purge-idempotency-keys", 24*time.Hour, func(ctx context.Context) error {
		deleted, err := repos.Idempotency.DeleteOlderThan(ctx, time.Now().Add(-idempotencyRetention))
		if err != nil {
			return err
		}
		logger.Info("[Job] Purged idempotency keys", "deleted", deleted)
		return nil
	})

	logger.Info("Scheduled recurring jobs")
}
