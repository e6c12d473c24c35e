package session

// Phase is the lifecycle phase of a widget session
type Phase int

const (
	// PhaseIdle is used only when the surface is explicitly hidden
	PhaseIdle Phase = iota
	// PhaseLoading means the surface is fetching or rendering the page
	PhaseLoading
	// PhaseLoaded means the page rendered successfully
	PhaseLoaded
	// PhaseError means the session failed; Reason says why
	PhaseError
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the observable state of a session. Reason is non-empty only in
// PhaseError.
type State struct {
	Phase  Phase
	Reason string
}

// String renders the state for logs and debugging
func (s State) String() string {
	if s.Phase == PhaseError {
		return "error{" + s.Reason + "}"
	}
	return s.Phase.String()
}

// Idle returns the inert state
func Idle() State { return State{Phase: PhaseIdle} }

// Loading returns the loading state
func Loading() State { return State{Phase: PhaseLoading} }

// Loaded returns the loaded state
func Loaded() State { return State{Phase: PhaseLoaded} }

// Failed returns an error state with the given reason
func Failed(reason string) State { return State{Phase: PhaseError, Reason: reason} }
