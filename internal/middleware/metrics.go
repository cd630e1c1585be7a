package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ActiveWebSockets tracks the number of currently open websocket
// connections. Incremented/decremented by the server's websocket handler.
var ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "gamehaqqs_active_websockets",
	Help: "Number of currently active websocket connections",
})

// RedisErrors counts Redis command failures by command name. Incremented
// from the cache package's client hook.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gamehaqqs_redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// InitMetrics creates the Prometheus HTTP middleware for the service.
// The returned middleware also serves the /metrics endpoint once
// RegisterAt is called on it.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler for the
// given Prometheus middleware instance.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
