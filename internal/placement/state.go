package placement

import "arplace/internal/ar"

// State is the controller's mode, derived from its flags every frame.
type State int

const (
	// StateSuspended: session not tracking, or the quit dialog is open.
	StateSuspended State = iota
	// StateSearching: tracking, but no surface is tracked or no placement point yet.
	StateSearching
	// StateReady: a placement point is valid and nothing is selected.
	StateReady
	// StateSelected: an object is selected and can be dragged or removed.
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateSuspended:
		return "Suspended"
	case StateSearching:
		return "Searching"
	case StateReady:
		return "Ready"
	case StateSelected:
		return "Selected"
	default:
		return "Unknown"
	}
}

type stateInputs struct {
	modal          bool
	status         ar.SessionStatus
	surfaceTracked bool
	placementValid bool
	selected       bool
}

func resolveState(in stateInputs) State {
	switch {
	case in.modal || in.status != ar.SessionTracking:
		return StateSuspended
	case in.selected:
		return StateSelected
	case !in.surfaceTracked || !in.placementValid:
		return StateSearching
	default:
		return StateReady
	}
}
