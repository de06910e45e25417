package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"triptogether/docs"
	"triptogether/internal/config"
	handlers "triptogether/internal/http/handler"
	"triptogether/internal/http/middleware"
	"triptogether/internal/logger"
	"triptogether/internal/notify"
	"triptogether/internal/otel"
	"triptogether/internal/service"
	"triptogether/internal/storage"
	"triptogether/web"
)

const shutdownTimeout = 10 * time.Second

// @title Trip Together API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, time.UTC)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("failed to initialize tracing", logger.Error(err))
		os.Exit(1)
	}

	// Media storage is optional; without it images come from IMAGE_BASE_URL.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Error("failed to initialize object storage", logger.Error(err))
			os.Exit(1)
		}
	}

	var fwd notify.Forwarder = notify.NewNoop(log)
	if mg := notify.NewMailgun(cfg.Mail, log); mg != nil {
		fwd = mg
	}
	log.Info("contact forwarder configured", slog.String("forwarder", fwd.Name()), slog.Bool("media_storage", objStore != nil))

	contactSvc := service.NewContactService(fwd, log)
	mediaSvc := service.NewMediaService(objStore, cfg.Site.ImageBaseURL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("failed to register metrics", logger.Error(err))
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:               "triptogether",
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath || strings.HasPrefix(c.Path(), "/static/")
	})))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Deps{
		Contact:       contactSvc,
		Media:         mediaSvc,
		Log:           log,
		DefaultLocale: cfg.Site.DefaultLocale,
		PresignMedia:  cfg.Site.PresignMedia,
		ContactGuard: limiter.New(limiter.Config{
			Max:        cfg.ContactRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return fiber.ErrTooManyRequests
			},
		}),
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("server shutdown failed", logger.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server listening", slog.String("addr", addr), slog.String("app_host", cfg.AppHost))
	if err := app.Listen(addr); err != nil {
		log.Error("failed to start server", logger.Error(err))
		os.Exit(1)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing shutdown failed", logger.Error(err))
	}
}
