// Package ar models the tracking side of an augmented-reality session: session
// status, detected planes, poses and touches. SimulatedSession stands in for a
// device tracking engine on desktop.
package ar

import "fmt"

type SessionStatus int

const (
	SessionNotTracking SessionStatus = iota
	SessionTracking
	SessionErrorPermissionDenied
	SessionErrorOther
	SessionInvalid
)

func (s SessionStatus) String() string {
	switch s {
	case SessionNotTracking:
		return "NotTracking"
	case SessionTracking:
		return "Tracking"
	case SessionErrorPermissionDenied:
		return "ErrorPermissionDenied"
	case SessionErrorOther:
		return "ErrorOther"
	case SessionInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("SessionStatus(%d)", int(s))
	}
}

// IsError reports whether the session failed in a way the app cannot recover from.
func (s SessionStatus) IsError() bool {
	return s == SessionErrorPermissionDenied || s == SessionErrorOther
}
