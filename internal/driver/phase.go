package driver

// Phase is a stage of a run session
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseStepping
	PhaseSweeping
	PhaseDone
	PhaseFailed
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseStepping:
		return "stepping"
	case PhaseSweeping:
		return "sweeping"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will be scheduled
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed || p == PhaseCancelled
}
