package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/api/view"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// Success notices survive the post/redirect/get hop as a short code in the
// "ok" query parameter.
const (
	okCreated       = "created"
	okUpdated       = "updated"
	okDeleted       = "deleted"
	okEmployeeAdded = "employee_added"
)

var okMessages = map[string]string{
	okCreated:       "Time entry submitted successfully!",
	okUpdated:       "Time entry updated successfully",
	okDeleted:       "Time entry deleted successfully",
	okEmployeeAdded: "Employee added successfully!",
}

// newPage starts the template data for a page. Every render mints a fresh
// form instance id.
func newPage(c echo.Context, title string) view.Page {
	return view.Page{
		Title:   title,
		Session: middleware.CurrentSession(c),
		FormID:  uuid.NewString(),
	}
}

func flashFromQuery(c echo.Context) *domain.Flash {
	if text, ok := okMessages[c.QueryParam("ok")]; ok {
		return domain.SuccessFlash(text)
	}
	return nil
}

func redirectOK(c echo.Context, path string, q url.Values, code string) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("ok", code)
	return c.Redirect(http.StatusSeeOther, path+"?"+q.Encode())
}

// statusFor picks the response code of a re-rendered form.
func statusFor(err error) int {
	var re *domain.RequestError
	switch {
	case domain.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.As(err, &re) && re.StatusCode >= 400 && re.StatusCode < 500:
		return re.StatusCode
	default:
		return http.StatusBadGateway
	}
}

// userLocation resolves the browser zone posted with a form, falling back to
// def when it is missing or unknown.
func userLocation(tz string, def *time.Location) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if def == nil {
		return time.UTC
	}
	return def
}
