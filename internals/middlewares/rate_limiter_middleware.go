package middlewares

import (
	"time"

	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimits menyimpan budget per menit + storage opsional (Redis).
// Storage nil → counter in-memory per proses.
type RateLimits struct {
	GlobalMax int
	LoginMax  int
	Storage   fiber.Storage
}

// Global limiter: untuk semua endpoint biasa
func (r RateLimits) Global() fiber.Handler {
	return newLimiter(r.GlobalMax, time.Minute, "g:", r.Storage,
		"Too many requests, please try again later.")
}

// Rate limiter untuk login & register (lebih ketat)
func (r RateLimits) Login() fiber.Handler {
	return newLimiter(r.LoginMax, time.Minute, "l:", r.Storage,
		"Too many login attempts, please try again in a minute.")
}

func newLimiter(max int, exp time.Duration, prefix string, storage fiber.Storage, msg string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: exp,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return prefix + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}
