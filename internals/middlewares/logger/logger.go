package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Health check tidak ikut dicatat, sisanya satu baris per request.
var quietPaths = map[string]struct{}{
	"/api/health": {},
}

func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			_, skip := quietPaths[c.Path()]
			return skip
		},
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Format:     "[${time}] ${locals:request_id} ${ip} ${method} ${path} -> ${status} (${latency}) ${bytesSent}B\n",
	})
}
