package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/database"
	"github.com/donationDB/Donation-Web/internal/handlers"
	"github.com/donationDB/Donation-Web/internal/logging"
	"github.com/donationDB/Donation-Web/internal/maintenance"
	"github.com/donationDB/Donation-Web/internal/middleware"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/routes"
	"github.com/donationDB/Donation-Web/internal/services"
	"github.com/donationDB/Donation-Web/internal/store"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	stdout := logging.Setup(cfg.LogLevel)

	if cfg.PasswordMode != "plain" && cfg.PasswordMode != "bcrypt" {
		slog.Error("PASSWORD_MODE must be plain or bcrypt", "value", cfg.PasswordMode)
		os.Exit(1)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Sample store (fallback dataset)
	var sample *store.Sample
	if cfg.SampleData {
		var err error
		if sample, err = store.LoadSample(); err != nil {
			slog.Error("sample data load failed", "error", err)
			os.Exit(1)
		}
	}

	// Database; program columns are read before migrating so an older
	// table keeps its own names
	programCols := store.DefaultProgramColumns()
	db, err := database.Connect(cfg)
	if err == nil {
		var colErr error
		if programCols, colErr = store.ResolveProgramColumns(db); colErr != nil {
			slog.Warn("could not read program columns, using defaults", "error", colErr)
		}
		slog.Info("program columns", "id", programCols.ID, "status", programCols.Status,
			"start_date", programCols.StartDate, "end_date", programCols.EndDate)
		err = database.Migrate(db, programCols.ID)
	}
	if err != nil {
		if sample == nil {
			slog.Error("database unavailable", "error", err)
			os.Exit(1)
		}
		slog.Error("database unavailable, serving sample data only", "error", err)
		db = nil
	}

	// Database log handler (ERROR+ async batch)
	var dbLogHandler *logging.DBHandler
	if db != nil {
		dbLogHandler = logging.NewDBHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, logging.Sink{Name: logging.SystemLogSink, Handler: dbLogHandler})))
	}

	st := openStores(db, programCols, sample)
	codec := services.CodecFor(cfg.PasswordMode)

	// Services
	authService := services.NewAuthService(cfg, st.donors, st.sampleDonors, codec)
	donorService := services.NewDonorService(st.donors, st.sampleDonors, codec)
	programService := services.NewProgramService(st.programs, st.samplePrograms)
	categoryService := services.NewCategoryService(st.categories, st.sampleCategories)
	companyService := services.NewCompanyService(st.companies, st.sampleCompanies, programService)

	// Daily maintenance: program sweep and log retention
	loc := cfg.Location()
	jobs := []maintenance.Job{
		maintenance.SweepJob(st.sweeper, func() time.Time { return time.Now().In(loc) }),
	}
	if db != nil {
		jobs = append(jobs, maintenance.Job{
			Name: "log-retention",
			Run:  logging.NewRetention(db, cfg.LogRetentionDays).Prune,
		})
	}
	scheduler, err := maintenance.NewScheduler(cfg.MaintenanceAt, loc, jobs...)
	if err != nil {
		slog.Error("invalid MAINTENANCE_AT", "value", cfg.MaintenanceAt, "error", err)
		os.Exit(1)
	}
	scheduler.Start(context.Background())

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, routes.Handlers{
		Health:     handlers.NewHealthHandler(st.pinger),
		Auth:       handlers.NewAuthHandler(authService),
		Donors:     handlers.NewDonorHandler(donorService),
		Programs:   handlers.NewProgramHandler(programService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Companies:  handlers.NewCompanyHandler(companyService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "sample_data", cfg.SampleData, "admin_guard", cfg.JWTSecret != "")
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	scheduler.Stop()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	// Close database connections
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
}

// stores holds the primary repositories and, when sample data is enabled,
// the sample ones. Sample fields stay nil interfaces when it is disabled.
type stores struct {
	donors     store.DonorRepository
	programs   store.Repository[models.Program]
	companies  store.Repository[models.Company]
	categories store.Repository[models.Category]
	sweeper    store.Sweeper
	pinger     handlers.Pinger

	sampleDonors     store.DonorRepository
	samplePrograms   store.Repository[models.Program]
	sampleCompanies  store.Repository[models.Company]
	sampleCategories store.Repository[models.Category]
}

// openStores wires the primary store, or the offline stand-in when db is
// nil, and the sample store when one was loaded.
func openStores(db *gorm.DB, cols store.ProgramColumns, sample *store.Sample) stores {
	var st stores
	if db != nil {
		st.donors = store.NewGormDonors(db)
		st.programs = store.NewGormPrograms(db, cols)
		st.companies = store.NewGormTable[models.Company](db, "company_id")
		st.categories = store.NewGormTable[models.Category](db, "category_id")
		st.sweeper = store.NewGormSweeper(db, cols)
		st.pinger = database.NewPinger(db)
	} else {
		st.donors = store.Offline[models.Donor]{}
		st.programs = store.Offline[models.Program]{}
		st.companies = store.Offline[models.Company]{}
		st.categories = store.Offline[models.Category]{}
		st.sweeper = store.Offline[struct{}]{}
		st.pinger = store.Offline[struct{}]{}
	}

	if sample != nil {
		st.sampleDonors = sample.Donors
		st.samplePrograms = sample.Programs
		st.sampleCompanies = sample.Companies
		st.sampleCategories = sample.Categories
	}
	return st
}
