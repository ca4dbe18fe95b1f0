package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

const (
	formCreateTimeEntry = "create_time_entry"
	formUpdateTimeEntry = "update_time_entry"
	formDeleteTimeEntry = "delete_time_entry"
)

type TimeEntryService struct {
	repo   ports.TimeEntryRepository
	runner *SubmissionRunner
	now    func() time.Time
	log    zerolog.Logger
}

func NewTimeEntryService(repo ports.TimeEntryRepository, runner *SubmissionRunner, log zerolog.Logger) *TimeEntryService {
	return &TimeEntryService{repo: repo, runner: runner, now: time.Now, log: log}
}

// WithClock replaces the source of "now" used by the time checks.
func (s *TimeEntryService) WithClock(now func() time.Time) *TimeEntryService {
	s.now = now
	return s
}

// checkTimes reads both wall clocks in loc and applies the ordering rules.
func (s *TimeEntryService) checkTimes(in ports.TimeEntryInput, loc *time.Location) error {
	start, err := domain.ParseWallClock(in.Start, loc)
	if err != nil {
		return err
	}
	end, err := domain.ParseWallClock(in.End, loc)
	if err != nil {
		return err
	}
	return domain.ValidateTimes(start, end, s.now())
}

// Create files a new entry for the session's employee. Wall clocks are
// converted to UTC instants in the user's zone.
func (s *TimeEntryService) Create(ctx context.Context, sess *domain.Session, in ports.TimeEntryInput) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	_, err := s.runner.Run(ctx, formCreateTimeEntry, in.FormID,
		func() error { return s.checkTimes(in, in.Location) },
		func(ctx context.Context) error {
			start, err := domain.CreateInstant(in.Start, in.Location)
			if err != nil {
				return err
			}
			end, err := domain.CreateInstant(in.End, in.Location)
			if err != nil {
				return err
			}
			return s.repo.Create(ctx, sess.Token, ports.TimeEntryPayload{
				EmployeeID:  sess.EmployeeID,
				StartTime:   start,
				EndTime:     end,
				Description: in.Description,
			})
		},
	)
	return err
}

// List fetches the employee's entries, optionally for one day. A failed
// fetch yields an empty list and the error, never stale rows.
func (s *TimeEntryService) List(ctx context.Context, sess *domain.Session, date string) ports.TimeEntryList {
	out := ports.TimeEntryList{Entries: []domain.TimeEntry{}, Date: date}
	if sess == nil || sess.EmployeeID == "" {
		return out
	}

	entries, err := s.repo.List(ctx, sess.Token, sess.EmployeeID, date)
	if err != nil {
		s.log.Error().Err(err).Str("employee_id", sess.EmployeeID).Str("date", date).Msg("failed to load time entries")
		out.Err = err
		return out
	}
	if entries != nil {
		out.Entries = entries
	}
	return out
}

// Find picks one entry out of the current list for the edit overlay.
func (s *TimeEntryService) Find(ctx context.Context, sess *domain.Session, id, date string) (*domain.TimeEntry, error) {
	list := s.List(ctx, sess, date)
	if list.Err != nil {
		return nil, list.Err
	}
	for i := range list.Entries {
		if list.Entries[i].ID == id {
			entry := list.Entries[i]
			return &entry, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

// Update sends the wall clocks as-is with a UTC marker (see
// domain.EditInstant), so the time checks read them as UTC too. The edit
// overlay is prefilled with UTC components; an untouched field validates as
// the stored instant.
func (s *TimeEntryService) Update(ctx context.Context, sess *domain.Session, id string, in ports.TimeEntryInput) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	_, err := s.runner.Run(ctx, formUpdateTimeEntry, in.FormID,
		func() error {
			if id == "" {
				return &domain.ValidationError{Reason: "Missing time entry id"}
			}
			return s.checkTimes(in, time.UTC)
		},
		func(ctx context.Context) error {
			start, err := domain.EditInstant(in.Start)
			if err != nil {
				return err
			}
			end, err := domain.EditInstant(in.End)
			if err != nil {
				return err
			}
			return s.repo.Update(ctx, sess.Token, id, ports.TimeEntryPayload{
				StartTime:   start,
				EndTime:     end,
				Description: in.Description,
			})
		},
	)
	return err
}

func (s *TimeEntryService) Delete(ctx context.Context, sess *domain.Session, formID, id string) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	_, err := s.runner.Run(ctx, formDeleteTimeEntry, formID,
		func() error {
			if id == "" {
				return &domain.ValidationError{Reason: "Missing time entry id"}
			}
			return nil
		},
		func(ctx context.Context) error {
			return s.repo.Delete(ctx, sess.Token, id)
		},
	)
	return err
}
