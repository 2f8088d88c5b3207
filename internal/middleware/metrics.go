package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation; incremented by the
// cache package's go-redis hook.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "forkful_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// ViewCountIncrements counts restaurant detail views recorded in the database.
var ViewCountIncrements = promauto.NewCounter(prometheus.CounterOpts{
	Name: "forkful_restaurant_views_total",
	Help: "Total number of restaurant detail views recorded",
})

var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware for the given service
// name. The underlying collectors register against the default Prometheus
// registry, so the middleware is a singleton.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New(serviceName)
	})
	return promMiddleware
}

// MetricsMiddleware returns a Fiber handler recording request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
