package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
	cookies  *middleware.TokenCookie
}

func NewAuthHandler(sessions ports.SessionService, cookies *middleware.TokenCookie) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookies: cookies}
}

// SignInPage handles GET / and GET /signin.
func (h *AuthHandler) SignInPage(c echo.Context) error {
	p := newPage(c, "Sign In")
	p.Data = signInView{}
	return c.Render(http.StatusOK, "signin", p)
}

// SignIn handles POST /signin. On success the token is stored in the
// session cookie and the browser is sent to its role's home page.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	err := c.Validate(&req)
	if err == nil {
		var token string
		token, err = h.sessions.SignIn(c.Request().Context(), req.Username, req.Password)
		if err == nil {
			if err := h.cookies.Issue(c, token); err != nil {
				return err
			}
			return c.Redirect(http.StatusSeeOther, "/home")
		}
	}

	p := newPage(c, "Sign In")
	p.Flash = domain.ErrorFlash(domain.UserMessage(err, "Invalid username or password"))
	p.Data = signInView{Username: req.Username}
	return c.Render(statusFor(err), "signin", p)
}

// SignOut handles POST /signout.
func (h *AuthHandler) SignOut(c echo.Context) error {
	h.cookies.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Home handles GET /home, the landing page after sign-in.
func (h *AuthHandler) Home(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	switch {
	case sess == nil:
		return c.Redirect(http.StatusSeeOther, "/")
	case sess.IsAdmin():
		return c.Redirect(http.StatusSeeOther, "/admin/employees")
	default:
		return c.Redirect(http.StatusSeeOther, "/employee/time-entry")
	}
}
