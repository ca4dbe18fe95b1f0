package ports

import (
	"context"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// AuthRepository is the external API's authentication surface.
type AuthRepository interface {
	// CheckToken resolves a token to the identity it was issued for.
	// Returns domain.ErrUnauthenticated when the API rejects the token.
	CheckToken(ctx context.Context, token string) (*domain.Session, error)
	// Login exchanges credentials for a token.
	Login(ctx context.Context, username, password string) (string, error)
}
