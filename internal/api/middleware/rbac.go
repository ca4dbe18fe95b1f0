package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole lets through sessions whose role is listed. Anyone else is
// sent back to the entry page rather than shown an error.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			if _, ok := allowed[sess.Role]; !ok {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
