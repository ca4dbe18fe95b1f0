package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

const sessionKey = "session"

// Session runs the bootstrap check on every request. Public paths pass
// through untouched; any other path needs a token the API still accepts,
// otherwise the cookie is dropped and the browser is sent to the sign-in
// page.
func Session(sessions ports.SessionService, cookies *TokenCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := cookies.Read(c)
			res := sessions.Bootstrap(c.Request().Context(), c.Request().URL.Path, token)

			if res.Public {
				return next(c)
			}
			if res.State != ports.SessionAuthenticated || res.Session == nil {
				if res.ClearToken {
					cookies.Clear(c)
				}
				return c.Redirect(http.StatusSeeOther, "/")
			}

			c.Set(sessionKey, res.Session)
			return next(c)
		}
	}
}

// CurrentSession returns the session placed by Session, or nil.
func CurrentSession(c echo.Context) *domain.Session {
	s, _ := c.Get(sessionKey).(*domain.Session)
	return s
}

// WithSession is used by tests and by handlers mounted outside Session.
func WithSession(c echo.Context, s *domain.Session) {
	c.Set(sessionKey, s)
}
