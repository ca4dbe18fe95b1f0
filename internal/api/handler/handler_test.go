package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/api/view"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubSessionService struct {
	signInFn func(ctx context.Context, username, password string) (string, error)
	calls    int
}

func (s *stubSessionService) Bootstrap(context.Context, string, string) ports.BootstrapResult {
	return ports.BootstrapResult{}
}

func (s *stubSessionService) SignIn(ctx context.Context, username, password string) (string, error) {
	s.calls++
	return s.signInFn(ctx, username, password)
}

type stubTimeEntryService struct {
	createFn func(ctx context.Context, s *domain.Session, in ports.TimeEntryInput) error
	listFn   func(ctx context.Context, s *domain.Session, date string) ports.TimeEntryList
	findFn   func(ctx context.Context, s *domain.Session, id, date string) (*domain.TimeEntry, error)
	updateFn func(ctx context.Context, s *domain.Session, id string, in ports.TimeEntryInput) error
	deleteFn func(ctx context.Context, s *domain.Session, formID, id string) error
}

func (s *stubTimeEntryService) Create(ctx context.Context, sess *domain.Session, in ports.TimeEntryInput) error {
	return s.createFn(ctx, sess, in)
}

func (s *stubTimeEntryService) List(ctx context.Context, sess *domain.Session, date string) ports.TimeEntryList {
	if s.listFn == nil {
		return ports.TimeEntryList{Entries: []domain.TimeEntry{}, Date: date}
	}
	return s.listFn(ctx, sess, date)
}

func (s *stubTimeEntryService) Find(ctx context.Context, sess *domain.Session, id, date string) (*domain.TimeEntry, error) {
	return s.findFn(ctx, sess, id, date)
}

func (s *stubTimeEntryService) Update(ctx context.Context, sess *domain.Session, id string, in ports.TimeEntryInput) error {
	return s.updateFn(ctx, sess, id, in)
}

func (s *stubTimeEntryService) Delete(ctx context.Context, sess *domain.Session, formID, id string) error {
	return s.deleteFn(ctx, sess, formID, id)
}

type stubEmployeeService struct {
	createFn func(ctx context.Context, s *domain.Session, in ports.CreateEmployeeInput) error
	listFn   func(ctx context.Context, s *domain.Session) ([]domain.Employee, error)
}

func (s *stubEmployeeService) Create(ctx context.Context, sess *domain.Session, in ports.CreateEmployeeInput) error {
	return s.createFn(ctx, sess, in)
}

func (s *stubEmployeeService) List(ctx context.Context, sess *domain.Session) ([]domain.Employee, error) {
	return s.listFn(ctx, sess)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	r, err := view.New()
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	e.Renderer = r
	return e
}

func employeeSession() *domain.Session {
	return &domain.Session{UserID: "u1", Role: domain.RoleEmployee, EmployeeID: "e1", Token: "tok"}
}

func adminSession() *domain.Session {
	return &domain.Session{UserID: "a1", Role: domain.RoleAdmin, Token: "tok"}
}

func newGet(e *echo.Echo, target string, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		middleware.WithSession(c, sess)
	}
	return c, rec
}

func newPost(e *echo.Echo, target string, form url.Values, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		middleware.WithSession(c, sess)
	}
	return c, rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}

func assertBody(t *testing.T, rec *httptest.ResponseRecorder, code int, fragments ...string) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
	for _, f := range fragments {
		if !strings.Contains(rec.Body.String(), f) {
			t.Fatalf("body does not contain %q:\n%s", f, rec.Body.String())
		}
	}
}

func newCookies() *middleware.TokenCookie {
	return middleware.NewTokenCookie(testSecret, time.Hour, false)
}
