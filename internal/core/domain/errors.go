package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrEntryNotFound      = errors.New("time entry not found")
	ErrSubmissionInFlight = errors.New("submission already in progress")
)

// ValidationError is a client-side rejection. It never reaches the network
// and is never logged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// RequestError is a failed call to the external API: either the transport
// failed (Err set, StatusCode zero) or the API answered non-2xx.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// UserMessage returns the server-supplied message when there is one.
func (e *RequestError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// UserMessage picks the inline text for err: the validation reason, the API
// message, or fallback.
func UserMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.UserMessage(fallback)
	}
	if errors.Is(err, ErrSubmissionInFlight) {
		return "A submission is already in progress"
	}
	return fallback
}

// IsValidation reports whether err was raised before any network call.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
