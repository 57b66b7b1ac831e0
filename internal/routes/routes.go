package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/config"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Properties *handlers.PropertyHandler
	Tenants    *handlers.TenantHandler
	Rentals    *handlers.RentalHandler
	Payments   *handlers.PaymentHandler
	Documents  *handlers.DocumentHandler
	Agreements *handlers.AgreementHandler
	Dashboard  *handlers.DashboardHandler
}

// Limits are requests per minute per client IP. Zero disables the limiter.
type Limits struct {
	API  int
	Auth int
}

var DefaultLimits = Limits{API: 120, Auth: 10}

func Setup(app *fiber.App, cfg *config.Config, h Handlers, limits Limits) {
	api := app.Group("/api")
	if limits.API > 0 {
		api.Use(perMinute(limits.API))
	}

	api.Get("/health", h.Health.Check)

	auth := api.Group("/auth")
	if limits.Auth > 0 {
		auth.Use(perMinute(limits.Auth))
	}
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	// Everything below requires a session. The public routes above are
	// registered first and match before this middleware runs. Role and
	// ownership checks happen in the services so that existence is always
	// checked before ownership.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.Me)

	protected.Get("/properties", h.Properties.List)
	protected.Post("/properties", h.Properties.Create)
	protected.Get("/properties/available", h.Properties.Available)
	protected.Get("/properties/:id", h.Properties.Get)
	protected.Patch("/properties/:id", h.Properties.Update)
	protected.Delete("/properties/:id", h.Properties.Delete)

	protected.Get("/tenants", h.Tenants.List)
	protected.Post("/tenants", h.Tenants.Create)
	protected.Get("/tenants/:id", h.Tenants.Get)
	protected.Patch("/tenants/:id", h.Tenants.Update)
	protected.Delete("/tenants/:id", h.Tenants.Delete)

	protected.Get("/rentals", h.Rentals.List)
	protected.Post("/rentals", h.Rentals.Create)
	protected.Get("/rentals/:id", h.Rentals.Get)
	protected.Patch("/rentals/:id", h.Rentals.Update)

	protected.Get("/rents", h.Payments.List)
	protected.Post("/rents", h.Payments.Create)
	protected.Get("/rents/:id", h.Payments.Get)
	protected.Patch("/rents/:id", h.Payments.Update)

	protected.Get("/documents", h.Documents.List)
	protected.Post("/documents", h.Documents.Create)
	protected.Get("/documents/:id", h.Documents.Get)
	protected.Patch("/documents/:id", h.Documents.Review)

	protected.Get("/agreements", h.Agreements.List)
	protected.Post("/agreements", h.Agreements.Create)
	protected.Get("/agreements/:id", h.Agreements.Get)
	protected.Get("/agreements/:id/render", h.Agreements.Render)
	protected.Patch("/agreements/:id", h.Agreements.Update)
	protected.Delete("/agreements/:id", h.Agreements.Delete)

	protected.Get("/tenant/dashboard", middleware.RequireRole(models.RoleTenant), h.Dashboard.Tenant)
	protected.Get("/landlord/dashboard", middleware.RequireRole(models.RoleLandlord), h.Dashboard.Landlord)
}

func perMinute(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
