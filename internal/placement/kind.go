package placement

import (
	"fmt"
	"strings"

	"arplace/internal/ar"
	"arplace/internal/engine"
)

type Kind int

const (
	KindTable Kind = iota
	KindChair
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "Table"
	case KindChair:
		return "Chair"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "table":
		return KindTable, nil
	case "chair":
		return KindChair, nil
	}
	return 0, fmt.Errorf("unknown furniture kind %q", s)
}

// PlacedObject is one piece of furniture the user has put down.
type PlacedObject struct {
	ID     string
	Entity engine.GameObjectRef
	Kind   Kind
	Pose   ar.Pose
}

type ChangeKind int

const (
	ChangePlaced ChangeKind = iota
	ChangeSelected
	ChangeDeselected
	ChangeMoved
	ChangeRemoved
)

var changeNames = [...]string{"placed", "selected", "deselected", "moved", "removed"}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeNames) {
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
	return changeNames[k]
}

// Change is emitted on Controller.Changes whenever the placed set or selection changes.
type Change struct {
	Kind   ChangeKind
	Object PlacedObject
}
