package domain

import (
	"fmt"
	"strings"
	"time"
)

// Layouts of <input type="datetime-local"> values. Browsers omit the seconds
// unless the step attribute asks for them.
const (
	wallClockMinutes = "2006-01-02T15:04"
	wallClockSeconds = "2006-01-02T15:04:05"

	instantLayout = "2006-01-02T15:04:05.000Z"
	displayLayout = "01/02/2006 03:04 PM"
)

// ParseWallClock reads a zone-less date and time and pins it to loc.
func ParseWallClock(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{wallClockMinutes, wallClockSeconds} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Reason: fmt.Sprintf("invalid date and time %q", s)}
}

// CreateInstant converts a wall clock read in loc to its UTC instant, the way
// new entries are submitted.
func CreateInstant(s string, loc *time.Location) (string, error) {
	t, err := ParseWallClock(s, loc)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(instantLayout), nil
}

// EditInstant copies the wall clock components verbatim and labels them UTC,
// without any zone shift. Edited entries have always been stored this way,
// which differs from CreateInstant for every zone other than UTC; the two are
// kept apart so historical entries keep their meaning.
func EditInstant(s string) (string, error) {
	t, err := ParseWallClock(s, time.UTC)
	if err != nil {
		return "", err
	}
	return t.Truncate(time.Minute).Format(instantLayout), nil
}

// FormatDisplay renders the UTC components of t, no local shift.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(displayLayout)
}

// EditValue is the datetime-local prefill for a stored instant.
func EditValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(wallClockMinutes)
}

// ParseInstant reads an instant as returned by the external API.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: %w", s, err)
	}
	return t.UTC(), nil
}
