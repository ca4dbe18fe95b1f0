package ports

import (
	"context"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// SessionState is the outcome of the bootstrap check.
type SessionState string

const (
	SessionChecking        SessionState = "checking"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// BootstrapResult describes what the page load should do next.
type BootstrapResult struct {
	State   SessionState
	Session *domain.Session
	// Public is true when the path skips the check entirely.
	Public bool
	// ClearToken asks the caller to drop the stored token.
	ClearToken bool
}

type SessionService interface {
	Bootstrap(ctx context.Context, path, token string) BootstrapResult
	SignIn(ctx context.Context, username, password string) (string, error)
}
