package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/database"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/jobs"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/logging"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/routes"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := loadConfig()
	if msg := cfg.Validate(); msg != "" {
		return errors.New(msg)
	}

	if err := connect(cfg); err != nil {
		return err
	}
	db := database.DB

	// ERROR records are also persisted to system_logs.
	dbLogHandler := logging.AttachDB(cfg.AppEnv, db)
	done := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, done)

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

	authz := access.NewAuthorizer(db)
	authService := services.NewAuthService(db, cfg)
	paymentService := services.NewPaymentService(db, authz)

	jobs.StartOverdueSweep(paymentService, cfg.OverdueSweepInterval, done)

	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	routes.Setup(app, cfg, routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Health:     handlers.NewHealthHandler(db),
		Properties: handlers.NewPropertyHandler(services.NewPropertyService(db, authz)),
		Tenants:    handlers.NewTenantHandler(services.NewTenantService(db, authz)),
		Rentals:    handlers.NewRentalHandler(services.NewRentalService(db, authz)),
		Payments:   handlers.NewPaymentHandler(paymentService),
		Documents:  handlers.NewDocumentHandler(services.NewDocumentService(db, authz)),
		Agreements: handlers.NewAgreementHandler(services.NewAgreementService(db, authz)),
		Dashboard:  handlers.NewDashboardHandler(services.NewDashboardService(db, authz)),
	}, routes.DefaultLimits)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	var runErr error
	select {
	case <-quit:
		slog.Info("shutting down server...")
	case runErr = <-listenErr:
		slog.Error("server failed to start", "error", runErr)
	}

	close(done)
	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	dbLogHandler.Stop()

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
	return runErr
}

// customErrorHandler covers errors that escape the handlers, such as
// unknown routes and recovered panics.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
