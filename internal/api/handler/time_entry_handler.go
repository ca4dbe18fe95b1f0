package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

const historyPath = "/employee/log-history"

type TimeEntryHandler struct {
	entries    ports.TimeEntryService
	defaultLoc *time.Location
}

func NewTimeEntryHandler(entries ports.TimeEntryService, defaultLoc *time.Location) *TimeEntryHandler {
	return &TimeEntryHandler{entries: entries, defaultLoc: defaultLoc}
}

// Form handles GET /employee/time-entry.
func (h *TimeEntryHandler) Form(c echo.Context) error {
	p := newPage(c, "Time Entry")
	p.Flash = flashFromQuery(c)
	p.Data = timeEntryView{}
	return c.Render(http.StatusOK, "time_entry", p)
}

// Create handles POST /employee/time-entry.
func (h *TimeEntryHandler) Create(c echo.Context) error {
	var req timeEntryForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.normalize()

	err := c.Validate(&req)
	if err == nil {
		err = h.entries.Create(c.Request().Context(), middleware.CurrentSession(c), req.toInput(h.defaultLoc))
	}
	if err == nil {
		return redirectOK(c, "/employee/time-entry", nil, okCreated)
	}

	p := newPage(c, "Time Entry")
	p.Flash = domain.ErrorFlash(domain.UserMessage(err, "Error submitting time entry"))
	p.Data = timeEntryView{Start: req.Start, End: req.End, Description: req.Description}
	return c.Render(statusFor(err), "time_entry", p)
}

// History handles GET /employee/log-history?date=YYYY-MM-DD.
func (h *TimeEntryHandler) History(c echo.Context) error {
	date, flash := h.dateFilter(c)
	if flash == nil {
		flash = flashFromQuery(c)
	}
	return h.renderHistory(c, http.StatusOK, historyView{Date: date}, flash)
}

// EditForm handles GET /employee/log-history/edit?id=.
func (h *TimeEntryHandler) EditForm(c echo.Context) error {
	date, _ := h.dateFilter(c)
	id := c.QueryParam("id")

	entry, err := h.entries.Find(c.Request().Context(), middleware.CurrentSession(c), id, date)
	if err != nil {
		msg := "Failed to load time entries"
		if errors.Is(err, domain.ErrEntryNotFound) {
			msg = "Time entry not found"
		}
		return h.renderHistory(c, statusFor(err), historyView{Date: date}, domain.ErrorFlash(msg))
	}

	return h.renderHistory(c, http.StatusOK, historyView{
		Date: date,
		Edit: &editView{
			ID:          entry.ID,
			FormID:      uuid.NewString(),
			Start:       domain.EditValue(entry.Start),
			End:         domain.EditValue(entry.End),
			Description: entry.Description,
		},
	}, nil)
}

// Update handles POST /employee/log-history/edit?id=. Failures keep the
// overlay open with the typed values.
func (h *TimeEntryHandler) Update(c echo.Context) error {
	date, _ := h.dateFilter(c)
	id := c.QueryParam("id")

	var req timeEntryForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.normalize()

	err := c.Validate(&req)
	if err == nil {
		err = h.entries.Update(c.Request().Context(), middleware.CurrentSession(c), id, req.toInput(h.defaultLoc))
	}
	if err == nil {
		return redirectOK(c, historyPath, dateQuery(date), okUpdated)
	}

	return h.renderHistory(c, statusFor(err), historyView{
		Date: date,
		Edit: &editView{
			ID:          id,
			FormID:      uuid.NewString(),
			Start:       req.Start,
			End:         req.End,
			Description: req.Description,
			Flash:       domain.ErrorFlash(domain.UserMessage(err, "Error updating time entry")),
		},
	}, nil)
}

// DeleteConfirm handles GET /employee/log-history/delete?id=.
func (h *TimeEntryHandler) DeleteConfirm(c echo.Context) error {
	date, _ := h.dateFilter(c)
	return h.renderHistory(c, http.StatusOK, historyView{
		Date:   date,
		Delete: &deleteView{ID: c.QueryParam("id"), FormID: uuid.NewString()},
	}, nil)
}

// Delete handles POST /employee/log-history/delete?id=.
func (h *TimeEntryHandler) Delete(c echo.Context) error {
	date, _ := h.dateFilter(c)

	err := h.entries.Delete(c.Request().Context(), middleware.CurrentSession(c), c.FormValue("form_id"), c.QueryParam("id"))
	if err == nil {
		return redirectOK(c, historyPath, dateQuery(date), okDeleted)
	}
	return h.renderHistory(c, statusFor(err), historyView{Date: date},
		domain.ErrorFlash(domain.UserMessage(err, "Error deleting time entry")))
}

// renderHistory fetches the list for v.Date and renders it. A failed fetch
// shows no rows and, unless flash is already set, the load error.
func (h *TimeEntryHandler) renderHistory(c echo.Context, status int, v historyView, flash *domain.Flash) error {
	list := h.entries.List(c.Request().Context(), middleware.CurrentSession(c), v.Date)
	v.Entries = list.Entries
	if list.Err != nil && flash == nil {
		flash = domain.ErrorFlash(domain.UserMessage(list.Err, "Failed to load time entries"))
	}

	p := newPage(c, "Log History")
	p.Flash = flash
	p.Data = v
	return c.Render(status, "log_history", p)
}

// dateFilter reads the date query parameter. A malformed value is dropped
// with an error notice.
func (h *TimeEntryHandler) dateFilter(c echo.Context) (string, *domain.Flash) {
	q := historyQuery{Date: c.QueryParam("date")}
	if err := c.Validate(&q); err != nil {
		return "", domain.ErrorFlash(domain.UserMessage(err, "Invalid date"))
	}
	return q.Date, nil
}

func dateQuery(date string) url.Values {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	return q
}
