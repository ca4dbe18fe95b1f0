package ports

import (
	"context"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// TimeEntryPayload is the wire body for creating or updating an entry.
// Instants are already formatted; EmployeeID is omitted on update.
type TimeEntryPayload struct {
	EmployeeID  string `json:"employeeId,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// TimeEntryRepository is the external API's time-entry surface.
type TimeEntryRepository interface {
	// List returns the entries of employeeID, restricted to one calendar day
	// when date (YYYY-MM-DD) is non-empty.
	List(ctx context.Context, token, employeeID, date string) ([]domain.TimeEntry, error)
	Create(ctx context.Context, token string, p TimeEntryPayload) error
	Update(ctx context.Context, token, id string, p TimeEntryPayload) error
	Delete(ctx context.Context, token, id string) error
}
