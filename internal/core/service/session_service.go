package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

// SessionService resolves the stored token into a session on every page
// load. It is the only writer of domain.Session.
type SessionService struct {
	repo    ports.AuthRepository
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

func NewSessionService(repo ports.AuthRepository, log zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, metrics: nopRecorder{}, log: log}
}

// WithMetrics sets where bootstrap results are counted.
func (s *SessionService) WithMetrics(rec ports.MetricsRecorder) *SessionService {
	if rec != nil {
		s.metrics = rec
	}
	return s
}

// publicPaths never run the token check.
var publicPaths = map[string]struct{}{
	"/":             {},
	"/health":       {},
	"/health/ready": {},
	"/metrics":      {},
}

// IsPublicPath reports whether path skips the session check. Any path
// containing /signin is public.
func IsPublicPath(path string) bool {
	if strings.Contains(path, "/signin") || strings.HasPrefix(path, "/static/") {
		return true
	}
	_, ok := publicPaths[path]
	return ok
}

// Bootstrap runs the checking → (authenticated | unauthenticated) machine.
func (s *SessionService) Bootstrap(ctx context.Context, path, token string) ports.BootstrapResult {
	if IsPublicPath(path) {
		s.metrics.SessionCheck("public")
		return ports.BootstrapResult{State: ports.SessionUnauthenticated, Public: true}
	}

	if token == "" {
		s.metrics.SessionCheck("no_token")
		return ports.BootstrapResult{State: ports.SessionUnauthenticated, ClearToken: true}
	}

	sess, err := s.repo.CheckToken(ctx, token)
	if err != nil {
		s.metrics.SessionCheck("rejected")
		if errors.Is(err, domain.ErrUnauthenticated) {
			s.log.Info().Str("path", path).Msg("session token rejected")
		} else {
			s.log.Error().Err(err).Str("path", path).Msg("session check failed")
		}
		return ports.BootstrapResult{State: ports.SessionUnauthenticated, ClearToken: true}
	}

	sess.Token = token
	s.metrics.SessionCheck("authenticated")
	return ports.BootstrapResult{State: ports.SessionAuthenticated, Session: sess}
}

// SignIn exchanges credentials for a token.
func (s *SessionService) SignIn(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", &domain.ValidationError{Reason: "Username and password are required"}
	}

	token, err := s.repo.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("sign in failed")
		return "", err
	}
	return token, nil
}
