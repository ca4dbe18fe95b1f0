package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/api/view"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// errorResponse is the JSON error envelope of the ops endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the browser.
//   - Answers JSON on ops paths and for JSON clients, an error page otherwise.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrUnauthenticated) && !wantsJSON(c) {
			_ = c.Redirect(http.StatusSeeOther, "/")
			return
		}

		code, msg := resolveError(err, log, c)
		if wantsJSON(c) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}
		if rerr := c.Render(code, "error", view.Page{Title: http.StatusText(code), Data: msg}); rerr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "sign in required"
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, "time entry not found"
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, "submission already in progress"
	}

	var re *domain.RequestError
	if errors.As(err, &re) {
		log.Error().Err(err).Str("op", re.Op).Int("upstream_status", re.StatusCode).Str("path", c.Path()).Msg("upstream request failed")
		return http.StatusBadGateway, "the time tracking service is unavailable"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func wantsJSON(c echo.Context) bool {
	p := c.Request().URL.Path
	if p == "/metrics" || strings.HasPrefix(p, "/health") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
