// Package webapi exposes the payment gateway clients to a checkout over HTTP.
// It is organized into sub-packages per gateway:
// - imoje: transactions, status, refunds and shop info
// - ing: transactions, status and refunds
package webapi

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/paygate/pkg/config"
	"github.com/amirasaad/paygate/webapi/common"
	imojeweb "github.com/amirasaad/paygate/webapi/imoje"
	ingweb "github.com/amirasaad/paygate/webapi/ing"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(deps *config.Deps) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	maxRequests, window := 100, time.Minute
	if deps.Config != nil && deps.Config.RateLimit != nil {
		maxRequests, window = deps.Config.RateLimit.MaxRequests, deps.Config.RateLimit.Window
	}

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	imojeweb.Routes(fiberApp, deps.Imoje, deps.Logger)
	ingweb.Routes(fiberApp, deps.Ing, deps.Logger)

	return fiberApp
}
