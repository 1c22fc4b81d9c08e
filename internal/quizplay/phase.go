package quizplay

// Phase is the orchestrator's state-machine tag. Holding the generation
// guard as a phase value instead of a separate boolean keeps every
// transition explicit and testable.
type Phase string

const (
	PhaseIdle       Phase = "IDLE"
	PhaseFetching   Phase = "FETCHING"
	PhaseGenerating Phase = "GENERATING"
	PhasePolling    Phase = "POLLING"
	PhaseReady      Phase = "READY"
	PhaseFailed     Phase = "FAILED"
	PhaseTimedOut   Phase = "TIMED_OUT"
)

var AllPhases = []Phase{
	PhaseIdle,
	PhaseFetching,
	PhaseGenerating,
	PhasePolling,
	PhaseReady,
	PhaseFailed,
	PhaseTimedOut,
}

func (p Phase) Terminal() bool {
	switch p {
	case PhaseReady, PhaseFailed, PhaseTimedOut:
		return true
	}
	return false
}

// InFlight reports whether a generation attempt is currently owned by this
// orchestrator instance.
func (p Phase) InFlight() bool {
	return p == PhaseGenerating || p == PhasePolling
}
