package domain

import "time"

// TimeEntry is a single logged work session owned by an employee.
type TimeEntry struct {
	ID          string
	Start       time.Time
	End         time.Time
	Description string
	EmployeeID  string
}

const (
	reasonStartAfterEnd = "Start time cannot be later than end time"
	reasonStartFuture   = "Start time cannot be in the future"
	reasonEndFuture     = "End time cannot be in the future"
)

// ValidateTimes applies the ordering rules shared by entry creation and
// editing. The first failing rule wins; equal start and end are allowed.
func ValidateTimes(start, end, now time.Time) error {
	switch {
	case start.After(end):
		return &ValidationError{Reason: reasonStartAfterEnd}
	case start.After(now):
		return &ValidationError{Reason: reasonStartFuture}
	case end.After(now):
		return &ValidationError{Reason: reasonEndFuture}
	}
	return nil
}

// Duration is the length of the session; zero when the entry is malformed.
func (e TimeEntry) Duration() time.Duration {
	if e.End.Before(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start)
}
