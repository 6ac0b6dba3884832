package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/config"
	"github.com/agencyops/backoffice-api/internal/handlers"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/policy"
)

type Handlers struct {
	Token     *handlers.TokenHandler
	Health    *handlers.HealthHandler
	User      *handlers.UserHandler
	Client    *handlers.ClientHandler
	Payment   *handlers.PaymentHandler
	Product   *handlers.ProductHandler
	Campaign  *handlers.CampaignHandler
	Page      *handlers.PageHandler
	VoiceOver *handlers.VoiceOverHandler
	Creative  *handlers.CreativeHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Token issuing is public but throttled harder: 10 req/min per IP
	token := api.Group("/token")
	token.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	token.Post("/", h.Token.Obtain)
	token.Post("/refresh", h.Token.Refresh)

	// Everything below requires a valid bearer token and a resolvable
	// caller. Authorization is declared per resource group; row-level
	// narrowing happens in the services.
	authed := api.Group("", middleware.JWTProtected(cfg), middleware.LoadCaller(db))

	users := authed.Group("", middleware.Authorize(policy.ResourceUsers))
	users.Get("/users", h.User.List)
	users.Post("/users", h.User.Create)
	users.Get("/user/:id", h.User.Get)
	users.Put("/user/:id", h.User.Update)
	users.Delete("/user/:id", h.User.Delete)

	directory := authed.Group("", middleware.Authorize(policy.ResourceDirectory))
	directory.Get("/media-buyers", h.User.MediaBuyers)
	directory.Get("/page-builders", h.User.PageBuilders)

	clients := authed.Group("", middleware.Authorize(policy.ResourceClients))
	clients.Get("/clients", h.Client.List)
	clients.Post("/clients", h.Client.Create)
	clients.Get("/client/:id", h.Client.Get)
	clients.Put("/client/:id", h.Client.Update)
	clients.Delete("/client/:id", h.Client.Delete)

	payments := authed.Group("", middleware.Authorize(policy.ResourcePayments))
	payments.Get("/payments", h.Payment.List)
	payments.Post("/payments", h.Payment.Create)
	payments.Get("/payment/:id", h.Payment.Get)
	payments.Put("/payment/:id", h.Payment.Update)
	payments.Delete("/payment/:id", h.Payment.Delete)

	products := authed.Group("", middleware.Authorize(policy.ResourceProducts))
	products.Get("/products", h.Product.List)
	products.Post("/products", h.Product.Create)
	products.Get("/product/:id", h.Product.Get)
	products.Put("/product/:id", h.Product.Update)
	products.Delete("/product/:id", h.Product.Delete)

	campaigns := authed.Group("", middleware.Authorize(policy.ResourceCampaigns))
	campaigns.Get("/campaigns", h.Campaign.List)
	campaigns.Post("/campaigns", h.Campaign.Create)
	campaigns.Get("/campaign/:id", h.Campaign.Get)
	campaigns.Put("/campaign/:id", h.Campaign.Update)
	campaigns.Delete("/campaign/:id", h.Campaign.Delete)

	pages := authed.Group("", middleware.Authorize(policy.ResourcePages))
	pages.Get("/pages", h.Page.List)
	pages.Post("/pages", h.Page.Create)
	pages.Get("/page/:id", h.Page.Get)
	pages.Put("/page/:id", h.Page.Update)
	pages.Delete("/page/:id", h.Page.Delete)

	voiceOvers := authed.Group("", middleware.Authorize(policy.ResourceVoiceOvers))
	voiceOvers.Get("/voice-overs", h.VoiceOver.List)
	voiceOvers.Post("/voice-overs", h.VoiceOver.Create)
	voiceOvers.Get("/voice-over/:id", h.VoiceOver.Get)
	voiceOvers.Put("/voice-over/:id", h.VoiceOver.Update)
	voiceOvers.Delete("/voice-over/:id", h.VoiceOver.Delete)

	creatives := authed.Group("", middleware.Authorize(policy.ResourceCreatives))
	creatives.Get("/creatives", h.Creative.List)
	creatives.Post("/creatives", h.Creative.Create)
	creatives.Get("/creative/:id", h.Creative.Get)
	creatives.Put("/creative/:id", h.Creative.Update)
	creatives.Delete("/creative/:id", h.Creative.Delete)
}
