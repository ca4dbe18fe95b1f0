package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/worklog/timesheet-dashboard/internal/infrastructure/http/handlers"
)

// RegisterOps mounts the probes and the Prometheus scrape endpoint on e.
// None of them require a session.
func RegisterOps(e *echo.Echo, gatherer prometheus.Gatherer, deps ...handlers.Dependency) {
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are Redis and the API up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
}
