package ports

import (
	"context"
	"time"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// TimeEntryInput is what the entry forms collect: wall clock strings as typed
// by the user and the zone they were typed in.
type TimeEntryInput struct {
	FormID      string
	Start       string
	End         string
	Description string
	Location    *time.Location
}

// TimeEntryList is a fetched history page. Err is set when the fetch failed,
// in which case Entries is empty.
type TimeEntryList struct {
	Entries []domain.TimeEntry
	Date    string
	Err     error
}

type TimeEntryService interface {
	Create(ctx context.Context, s *domain.Session, in TimeEntryInput) error
	List(ctx context.Context, s *domain.Session, date string) TimeEntryList
	Find(ctx context.Context, s *domain.Session, id, date string) (*domain.TimeEntry, error)
	Update(ctx context.Context, s *domain.Session, id string, in TimeEntryInput) error
	Delete(ctx context.Context, s *domain.Session, formID, id string) error
}
