package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/api"
	"github.com/worklog/timesheet-dashboard/internal/api/metrics"
	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/api/view"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
	"github.com/worklog/timesheet-dashboard/internal/core/service"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/config"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/db/redis"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/guard"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/http/handlers"
	"github.com/worklog/timesheet-dashboard/internal/infrastructure/remote"
	"github.com/worklog/timesheet-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg  *config.Config
	log  zerolog.Logger
	rdb  *goredis.Client
	echo *echo.Echo
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Get()

	client, err := remote.NewClient(remote.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger.Component("remote"))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	readiness := []handlers.Dependency{{Name: "upstream_api", Check: client.Reachable}}

	var (
		submissionGuard ports.SubmissionGuard
		rdb             *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		g := redis.NewSubmissionGuard(rdb)
		submissionGuard = g
		readiness = append(readiness, handlers.Dependency{Name: "redis", Check: g.Ping})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("submission guard backed by redis")
	} else {
		submissionGuard = guard.NewMemory()
		log.Info().Msg("submission guard in process")
	}

	runner := service.NewSubmissionRunner(submissionGuard, cfg.SubmissionTTL, logger.Component("submission")).
		WithMetrics(metrics.Recorder{})

	renderer, err := view.New()
	if err != nil {
		closeRedis(rdb)
		return nil, err
	}

	e, err := api.NewRouter(api.Deps{
		Sessions:        service.NewSessionService(remote.NewAuthRepository(client), logger.Component("session")).WithMetrics(metrics.Recorder{}),
		Entries:         service.NewTimeEntryService(remote.NewTimeEntryRepository(client), runner, logger.Component("time_entry")),
		Employees:       service.NewEmployeeService(remote.NewEmployeeRepository(client), runner, logger.Component("employee")),
		Cookies:         middleware.NewTokenCookie(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.CookieSecure),
		Renderer:        renderer,
		DefaultLocation: cfg.Location(),
		Log:             logger.Component("http"),
		Readiness:       readiness,
	})
	if err != nil {
		closeRedis(rdb)
		return nil, err
	}

	return &App{cfg: cfg, log: log, rdb: rdb, echo: e}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	defer closeRedis(a.rdb)

	addr := ":" + a.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", addr).Str("api", a.cfg.API.BaseURL).Msg("http server starting")
		errCh <- a.echo.Start(addr)
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func closeRedis(rdb *goredis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
