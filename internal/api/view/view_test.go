package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

type entriesData struct {
	Date    string
	Entries []domain.TimeEntry
	Edit    any
	Delete  any
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range []string{"signin", "time_entry", "log_history", "employees", "add_employee", "error"} {
		assert.Contains(t, r.pages, name)
	}
	assert.NotContains(t, r.pages, "layout")
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "nope", Page{}, nil))
}

func TestRender_HistoryRowsUseUTCDisplay(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	entry := domain.TimeEntry{
		ID:          "t1",
		Start:       time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC),
		Description: "Sprint <planning>",
	}

	var buf bytes.Buffer
	err = r.Render(&buf, "log_history", Page{
		Title:   "Log History",
		Session: &domain.Session{Role: domain.RoleEmployee, EmployeeID: "e1", Name: "Ana"},
		Flash:   domain.SuccessFlash("Time entry deleted successfully"),
		Data:    entriesData{Date: "2024-01-15", Entries: []domain.TimeEntry{entry}},
	}, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "01/15/2024 02:00 PM")
	assert.Contains(t, out, "01/15/2024 04:30 PM")
	assert.Contains(t, out, "2h 30m")
	assert.Contains(t, out, "Sprint &lt;planning&gt;")
	assert.Contains(t, out, "Time entry deleted successfully")
	assert.Contains(t, out, "Sign out Ana")
	assert.NotContains(t, out, "No entries found")
	assert.NotContains(t, out, "/admin/employees")
}

func TestRender_EmptyStates(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "log_history", Page{Data: entriesData{}}, nil))
	assert.Contains(t, buf.String(), "No entries found")

	buf.Reset()
	require.NoError(t, r.Render(&buf, "employees", Page{Data: struct{ Employees []domain.Employee }{}}, nil))
	assert.Contains(t, buf.String(), "No employees found")
}

func TestRender_EmployeeHours(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "employees", Page{
		Session: &domain.Session{Role: domain.RoleAdmin},
		Data: struct{ Employees []domain.Employee }{
			Employees: []domain.Employee{{Name: "Ana", Email: "ana@example.com", TotalHours: 12.5}},
		},
	}, nil))

	out := buf.String()
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "<td>12.5</td>")
	assert.Contains(t, out, "/admin/add-employee")
}
