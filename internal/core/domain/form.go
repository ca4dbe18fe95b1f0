package domain

// FormPhase is where a form instance is in its submission lifecycle:
//
//	idle → validating → submitting → (succeeded | failed) → idle
//
// A validation failure goes straight back to idle.
type FormPhase string

const (
	PhaseIdle       FormPhase = "idle"
	PhaseValidating FormPhase = "validating"
	PhaseSubmitting FormPhase = "submitting"
	PhaseSucceeded  FormPhase = "succeeded"
	PhaseFailed     FormPhase = "failed"
)

var phaseTransitions = map[FormPhase][]FormPhase{
	PhaseIdle:       {PhaseValidating},
	PhaseValidating: {PhaseIdle, PhaseSubmitting},
	PhaseSubmitting: {PhaseSucceeded, PhaseFailed},
	PhaseSucceeded:  {PhaseIdle},
	PhaseFailed:     {PhaseIdle},
}

// CanTransitionTo reports whether moving from p to next is allowed.
func (p FormPhase) CanTransitionTo(next FormPhase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is the inline message shown above a form or list.
type Flash struct {
	Kind string
	Text string
}

func SuccessFlash(text string) *Flash { return &Flash{Kind: FlashSuccess, Text: text} }
func ErrorFlash(text string) *Flash   { return &Flash{Kind: FlashError, Text: text} }
