package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

const defaultSubmissionTTL = 30 * time.Second

// SubmissionRunner drives one form post through its lifecycle. Validation
// failures never reach the network; a second post of the same form instance
// is turned away while the first is still in flight. There is no retry.
type SubmissionRunner struct {
	guard   ports.SubmissionGuard
	ttl     time.Duration
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

func NewSubmissionRunner(guard ports.SubmissionGuard, ttl time.Duration, log zerolog.Logger) *SubmissionRunner {
	if ttl <= 0 {
		ttl = defaultSubmissionTTL
	}
	return &SubmissionRunner{guard: guard, ttl: ttl, metrics: nopRecorder{}, log: log}
}

// WithMetrics sets where validation, guard and submission outcomes are counted.
func (r *SubmissionRunner) WithMetrics(rec ports.MetricsRecorder) *SubmissionRunner {
	if rec != nil {
		r.metrics = rec
	}
	return r
}

// Run validates, then submits. The returned phase is the one the form ends in
// before going back to idle: PhaseIdle when nothing was sent, PhaseSucceeded
// or PhaseFailed otherwise.
func (r *SubmissionRunner) Run(
	ctx context.Context,
	form, formID string,
	validate func() error,
	submit func(ctx context.Context) error,
) (domain.FormPhase, error) {
	if validate != nil {
		if err := validate(); err != nil {
			r.metrics.ValidationRejected(form)
			return domain.PhaseIdle, err
		}
	}

	if formID != "" && r.guard != nil {
		key := "submission:" + form + ":" + formID
		ok, err := r.guard.Acquire(ctx, key, r.ttl)
		switch {
		case err != nil:
			r.metrics.GuardDecision("error")
			r.log.Warn().Err(err).Str("form", form).Msg("submission guard unavailable, submitting anyway")
		case !ok:
			r.metrics.GuardDecision("duplicate")
			return domain.PhaseIdle, domain.ErrSubmissionInFlight
		default:
			r.metrics.GuardDecision("acquired")
			defer func() {
				if err := r.guard.Release(context.WithoutCancel(ctx), key); err != nil {
					r.log.Warn().Err(err).Str("form", form).Msg("failed to release submission guard")
				}
			}()
		}
	}

	if err := submit(ctx); err != nil {
		r.metrics.Submission(form, string(domain.PhaseFailed))
		r.log.Error().Err(err).Str("form", form).Msg("submission failed")
		return domain.PhaseFailed, err
	}

	r.metrics.Submission(form, string(domain.PhaseSucceeded))
	return domain.PhaseSucceeded, nil
}
