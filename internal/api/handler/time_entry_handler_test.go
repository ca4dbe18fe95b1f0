package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

func entryForm() url.Values {
	return url.Values{
		"form_id":     {"f-1"},
		"start_time":  {"2024-01-15T09:00"},
		"end_time":    {"2024-01-15T11:00"},
		"description": {"Standup"},
		"tz":          {"America/New_York"},
	}
}

func TestTimeEntryHandler_Create_PassesBrowserZone(t *testing.T) {
	e := newTestEcho(t)
	var got ports.TimeEntryInput
	h := NewTimeEntryHandler(&stubTimeEntryService{createFn: func(_ context.Context, _ *domain.Session, in ports.TimeEntryInput) error {
		got = in
		return nil
	}}, time.UTC)

	c, rec := newPost(e, "/employee/time-entry", entryForm(), employeeSession())
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertRedirect(t, rec, "/employee/time-entry?ok=created")
	if got.Location.String() != "America/New_York" || got.FormID != "f-1" || got.Start != "2024-01-15T09:00" {
		t.Fatalf("unexpected input %+v", got)
	}
}

func TestTimeEntryHandler_Create_UnknownZoneFallsBack(t *testing.T) {
	e := newTestEcho(t)
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	var got ports.TimeEntryInput
	h := NewTimeEntryHandler(&stubTimeEntryService{createFn: func(_ context.Context, _ *domain.Session, in ports.TimeEntryInput) error {
		got = in
		return nil
	}}, berlin)

	form := entryForm()
	form.Set("tz", "Nowhere/Special")
	c, _ := newPost(e, "/employee/time-entry", form, employeeSession())
	_ = h.Create(c)

	if got.Location != berlin {
		t.Fatalf("expected default zone, got %v", got.Location)
	}
}

func TestTimeEntryHandler_Create_ValidationKeepsValues(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{createFn: func(context.Context, *domain.Session, ports.TimeEntryInput) error {
		return &domain.ValidationError{Reason: "Start time cannot be later than end time"}
	}}, time.UTC)

	c, rec := newPost(e, "/employee/time-entry", entryForm(), employeeSession())
	_ = h.Create(c)

	assertBody(t, rec, http.StatusUnprocessableEntity,
		"Start time cannot be later than end time", `value="2024-01-15T09:00"`, "Standup")
}

func TestTimeEntryHandler_Create_MissingField(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{createFn: func(context.Context, *domain.Session, ports.TimeEntryInput) error {
		t.Fatalf("should not be called")
		return nil
	}}, time.UTC)

	form := entryForm()
	form.Del("end_time")
	c, rec := newPost(e, "/employee/time-entry", form, employeeSession())
	_ = h.Create(c)

	assertBody(t, rec, http.StatusUnprocessableEntity, "End time is required")
}

func TestTimeEntryHandler_Create_InFlight(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{createFn: func(context.Context, *domain.Session, ports.TimeEntryInput) error {
		return domain.ErrSubmissionInFlight
	}}, time.UTC)

	c, rec := newPost(e, "/employee/time-entry", entryForm(), employeeSession())
	_ = h.Create(c)

	assertBody(t, rec, http.StatusConflict, "A submission is already in progress")
}

func TestTimeEntryHandler_History(t *testing.T) {
	e := newTestEcho(t)
	var gotDate string
	h := NewTimeEntryHandler(&stubTimeEntryService{listFn: func(_ context.Context, _ *domain.Session, date string) ports.TimeEntryList {
		gotDate = date
		return ports.TimeEntryList{Date: date, Entries: []domain.TimeEntry{{
			ID:          "t1",
			Start:       time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			End:         time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
			Description: "Review",
		}}}
	}}, time.UTC)

	c, rec := newGet(e, "/employee/log-history?date=2024-01-15&ok=deleted", employeeSession())
	if err := h.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if gotDate != "2024-01-15" {
		t.Fatalf("date = %q", gotDate)
	}
	assertBody(t, rec, http.StatusOK, "01/15/2024 02:00 PM", "Review", "Time entry deleted successfully")
}

func TestTimeEntryHandler_History_BadDateListsAll(t *testing.T) {
	e := newTestEcho(t)
	gotDate := "unset"
	h := NewTimeEntryHandler(&stubTimeEntryService{listFn: func(_ context.Context, _ *domain.Session, date string) ports.TimeEntryList {
		gotDate = date
		return ports.TimeEntryList{Entries: []domain.TimeEntry{}}
	}}, time.UTC)

	c, rec := newGet(e, "/employee/log-history?date=15/01/2024", employeeSession())
	_ = h.History(c)

	if gotDate != "" {
		t.Fatalf("expected unfiltered list, got %q", gotDate)
	}
	assertBody(t, rec, http.StatusOK, "Date must be a valid date", "No entries found")
}

func TestTimeEntryHandler_History_FetchFailure(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{listFn: func(_ context.Context, _ *domain.Session, date string) ports.TimeEntryList {
		return ports.TimeEntryList{Entries: []domain.TimeEntry{}, Err: errors.New("timeout")}
	}}, time.UTC)

	c, rec := newGet(e, "/employee/log-history", employeeSession())
	_ = h.History(c)

	assertBody(t, rec, http.StatusOK, "Failed to load time entries", "No entries found")
}

func TestTimeEntryHandler_EditForm_Prefills(t *testing.T) {
	e := newTestEcho(t)
	entry := &domain.TimeEntry{
		ID:          "t1",
		Start:       time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC),
		Description: "Review",
	}
	h := NewTimeEntryHandler(&stubTimeEntryService{
		findFn: func(_ context.Context, _ *domain.Session, id, _ string) (*domain.TimeEntry, error) {
			if id != "t1" {
				t.Fatalf("id = %q", id)
			}
			return entry, nil
		},
	}, time.UTC)

	c, rec := newGet(e, "/employee/log-history/edit?id=t1", employeeSession())
	if err := h.EditForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertBody(t, rec, http.StatusOK, "Edit Time Entry", `value="2024-01-15T14:00"`, `value="2024-01-15T15:30"`)
}

func TestTimeEntryHandler_EditForm_NotFound(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{
		findFn: func(context.Context, *domain.Session, string, string) (*domain.TimeEntry, error) {
			return nil, domain.ErrEntryNotFound
		},
	}, time.UTC)

	c, rec := newGet(e, "/employee/log-history/edit?id=missing", employeeSession())
	_ = h.EditForm(c)

	assertBody(t, rec, http.StatusNotFound, "Time entry not found")
}

func TestTimeEntryHandler_Update(t *testing.T) {
	e := newTestEcho(t)
	var gotID string
	h := NewTimeEntryHandler(&stubTimeEntryService{updateFn: func(_ context.Context, _ *domain.Session, id string, _ ports.TimeEntryInput) error {
		gotID = id
		return nil
	}}, time.UTC)

	c, rec := newPost(e, "/employee/log-history/edit?id=t1&date=2024-01-15", entryForm(), employeeSession())
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if gotID != "t1" {
		t.Fatalf("id = %q", gotID)
	}
	assertRedirect(t, rec, "/employee/log-history?date=2024-01-15&ok=updated")
}

func TestTimeEntryHandler_Update_FailureKeepsOverlayOpen(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{updateFn: func(context.Context, *domain.Session, string, ports.TimeEntryInput) error {
		return &domain.RequestError{Op: "update_time_entry", StatusCode: http.StatusInternalServerError}
	}}, time.UTC)

	c, rec := newPost(e, "/employee/log-history/edit?id=t1", entryForm(), employeeSession())
	_ = h.Update(c)

	assertBody(t, rec, http.StatusBadGateway, "Edit Time Entry", "Error updating time entry", `value="2024-01-15T09:00"`)
}

func TestTimeEntryHandler_DeleteFlow(t *testing.T) {
	e := newTestEcho(t)
	var gotFormID, gotID string
	h := NewTimeEntryHandler(&stubTimeEntryService{deleteFn: func(_ context.Context, _ *domain.Session, formID, id string) error {
		gotFormID, gotID = formID, id
		return nil
	}}, time.UTC)

	c, rec := newGet(e, "/employee/log-history/delete?id=t1", employeeSession())
	_ = h.DeleteConfirm(c)
	assertBody(t, rec, http.StatusOK, "Are you sure you want to delete this time entry?")

	c, rec = newPost(e, "/employee/log-history/delete?id=t1", url.Values{"form_id": {"f-9"}}, employeeSession())
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/employee/log-history?ok=deleted")
	if gotFormID != "f-9" || gotID != "t1" {
		t.Fatalf("unexpected delete args %q %q", gotFormID, gotID)
	}
}

func TestTimeEntryHandler_Delete_Failure(t *testing.T) {
	e := newTestEcho(t)
	h := NewTimeEntryHandler(&stubTimeEntryService{deleteFn: func(context.Context, *domain.Session, string, string) error {
		return &domain.RequestError{Op: "delete_time_entry", Err: errors.New("connection reset")}
	}}, time.UTC)

	c, rec := newPost(e, "/employee/log-history/delete?id=t1", url.Values{}, employeeSession())
	_ = h.Delete(c)

	assertBody(t, rec, http.StatusBadGateway, "Error deleting time entry")
}
