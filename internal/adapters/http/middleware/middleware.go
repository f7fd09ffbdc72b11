package middleware

import (
	"errors"
	"time"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/config"
	"specs-nexus-web/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Setup configures all middlewares for the application
func Setup(app *fiber.App, cfg *config.Config) {
	// Recover middleware - catches panics
	app.Use(recover.New())

	// Gzip compression for HTML pages and static assets
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Security headers. Frames stay same-origin; the portal never embeds
	// itself anywhere else.
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Rate limiter (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests, please wait a moment.")
		},
	}))

	// Logger middleware
	if cfg.IsDev() {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
}

// LoginRateLimiter creates a stricter rate limiter for the login forms.
// 5 attempts per minute per IP.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-login"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many login attempts, please wait a minute.")
		},
	})
}

// NoCache sets no-store headers on authenticated pages so a browser
// back button never shows stale member data after logout.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}

// ErrorHandler renders errors globally. Expired upstream credentials send
// the visitor back to the matching login page instead of an error screen.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if nexus.IsUnauthorized(err) || errors.Is(err, domain.ErrSessionMissing) || errors.Is(err, domain.ErrUnauthorized) {
		if isOfficerPath(c.Path()) {
			return c.Redirect("/officer-login", fiber.StatusSeeOther)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if errors.Is(err, domain.ErrNotFound) {
		code = fiber.StatusNotFound
		message = "Not Found"
	}

	return c.Status(code).Render("pages/error", fiber.Map{
		"Title":   "Something went wrong",
		"Status":  code,
		"Message": message,
	}, "layouts/bare")
}
