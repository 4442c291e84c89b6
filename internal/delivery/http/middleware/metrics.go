package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

type MetricsMiddleware struct {
	observer HTTPObserver
}

func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Middleware labels requests by route pattern, not raw path, so ids do not
// blow up label cardinality.
func (m *MetricsMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.observer == nil {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveHTTP(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return err
	}
}
