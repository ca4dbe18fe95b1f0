package api

import (
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/api/handler"
	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
	ops "github.com/worklog/timesheet-dashboard/internal/infrastructure/http"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/http/handlers"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Sessions  ports.SessionService
	Entries   ports.TimeEntryService
	Employees ports.EmployeeService

	Cookies         *middleware.TokenCookie
	Renderer        echo.Renderer
	DefaultLocation *time.Location
	Log             zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Readiness  []handlers.Dependency
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.Renderer = d.Renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	httpMetrics, err := echoprometheus.MiddlewareConfig{
		Namespace:  "timesheet",
		Subsystem:  "http",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}.ToMiddleware()
	if err != nil {
		return nil, fmt.Errorf("http metrics: %w", err)
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(httpMetrics)
	e.Use(middleware.Session(d.Sessions, d.Cookies))

	// --- Sign-in ---
	authHandler := handler.NewAuthHandler(d.Sessions, d.Cookies)
	e.GET("/", authHandler.SignInPage)
	e.GET("/signin", authHandler.SignInPage)
	e.POST("/signin", authHandler.SignIn)
	e.POST("/signout", authHandler.SignOut)
	e.GET("/home", authHandler.Home)

	// --- Employee pages ---
	entryHandler := handler.NewTimeEntryHandler(d.Entries, d.DefaultLocation)
	emp := e.Group("/employee")
	emp.GET("/time-entry", entryHandler.Form)
	emp.POST("/time-entry", entryHandler.Create)
	emp.GET("/log-history", entryHandler.History)
	emp.GET("/log-history/edit", entryHandler.EditForm)
	emp.POST("/log-history/edit", entryHandler.Update)
	emp.GET("/log-history/delete", entryHandler.DeleteConfirm)
	emp.POST("/log-history/delete", entryHandler.Delete)

	// --- Admin pages ---
	employeeHandler := handler.NewEmployeeHandler(d.Employees)
	admin := e.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/employees", employeeHandler.List)
	admin.GET("/add-employee", employeeHandler.AddForm)
	admin.POST("/add-employee", employeeHandler.Create)

	// --- Probes and metrics (no session required) ---
	ops.RegisterOps(e, d.Gatherer, d.Readiness...)

	return e, nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
