package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"triptogether/internal/content"
	"triptogether/internal/logger"
	"triptogether/internal/service"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Contact       service.ContactService
	Media         service.MediaService
	Log           *slog.Logger
	DefaultLocale string
	// PresignMedia answers /media requests with a redirect to a pre-signed URL.
	PresignMedia bool
	// ContactGuard runs before both contact endpoints, typically a rate limiter. Optional.
	ContactGuard fiber.Handler
}

func (d Deps) defaultLocale() string {
	if content.Has(d.DefaultLocale) {
		return d.DefaultLocale
	}
	return content.DefaultLocale
}

func (d Deps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log.With(logger.Scope("http"))
	}
	return slog.New(slog.DiscardHandler)
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Fixed paths are registered before the /:lang catch-all.
func RegisterRoutes(app *fiber.App, d Deps) {
	guard := d.ContactGuard
	if guard == nil {
		guard = func(c *fiber.Ctx) error { return c.Next() }
	}

	app.Get("/health", HealthCheck(d.Media))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/content/:lang", ContentAPI())
	api.Post("/contact", guard, ContactAPI(d.Contact, d.defaultLocale()))

	app.Get(service.MediaPrefix+"*", Media(d.Media, d.PresignMedia, d.logger()))

	app.Get("/", LandingPage(d.Media, d.defaultLocale()))
	app.Get("/:lang", LocalePage(d.Media))
	app.Post("/:lang/documents", SubmitDocuments(d.Media))
	app.Post("/:lang/contact", guard, SubmitContact(d.Contact, d.Media))
}
