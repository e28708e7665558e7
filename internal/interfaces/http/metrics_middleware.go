package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/metrics"
)

// MetricsMiddleware times every request and records it by route pattern
// (not the raw path, to keep label cardinality bounded).
func MetricsMiddleware(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		collector.RecordHTTPRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return err
	}
}
