package placement

import (
	"testing"

	"arplace/internal/ar"
)

func TestResolveState(t *testing.T) {
	tests := []struct {
		name string
		in   stateInputs
		want State
	}{
		{"modal wins", stateInputs{modal: true, status: ar.SessionTracking, surfaceTracked: true, placementValid: true, selected: true}, StateSuspended},
		{"not tracking", stateInputs{status: ar.SessionNotTracking, surfaceTracked: true, placementValid: true}, StateSuspended},
		{"session error", stateInputs{status: ar.SessionErrorOther}, StateSuspended},
		{"no surface", stateInputs{status: ar.SessionTracking, placementValid: true}, StateSearching},
		{"no placement point", stateInputs{status: ar.SessionTracking, surfaceTracked: true}, StateSearching},
		{"ready", stateInputs{status: ar.SessionTracking, surfaceTracked: true, placementValid: true}, StateReady},
		{"selected", stateInputs{status: ar.SessionTracking, surfaceTracked: true, placementValid: true, selected: true}, StateSelected},
	}
	for _, tt := range tests {
		if got := resolveState(tt.in); got != tt.want {
			t.Errorf("%s: resolveState() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateReady.String() != "Ready" {
		t.Errorf("StateReady.String() = %q", StateReady.String())
	}
	if State(42).String() != "Unknown" {
		t.Errorf("State(42).String() = %q", State(42).String())
	}
	if ChangeKind(9).String() != "ChangeKind(9)" {
		t.Errorf("ChangeKind(9).String() = %q", ChangeKind(9).String())
	}
}
