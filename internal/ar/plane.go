package ar

import (
	"arplace/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type TrackingState int

const (
	TrackingStateTracking TrackingState = iota
	TrackingStatePaused
	TrackingStateStopped
)

func (s TrackingState) String() string {
	switch s {
	case TrackingStateTracking:
		return "Tracking"
	case TrackingStatePaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Plane is a detected horizontal surface.
type Plane struct {
	ID       string
	Center   rl.Vector3
	Extents  rl.Vector2 // full size along X and Z
	Rotation rl.Quaternion
	State    TrackingState
	Color    rl.Color
}

func NewPlane(center rl.Vector3, extents rl.Vector2, rotation rl.Quaternion) *Plane {
	return &Plane{
		ID:       uuid.NewString(),
		Center:   center,
		Extents:  extents,
		Rotation: rotation,
		State:    TrackingStateTracking,
		Color:    rl.SkyBlue,
	}
}

func (p *Plane) IsActivelyTracking() bool {
	return p.State == TrackingStateTracking
}

// Contains reports whether point lies over the plane's rectangle, ignoring height.
func (p *Plane) Contains(point rl.Vector3) bool {
	dx := point.X - p.Center.X
	dz := point.Z - p.Center.Z
	return dx >= -p.Extents.X/2 && dx <= p.Extents.X/2 &&
		dz >= -p.Extents.Y/2 && dz <= p.Extents.Y/2
}

// Raycast intersects ray with the plane's rectangle. The hit pose carries the
// plane's rotation.
func (p *Plane) Raycast(ray rl.Ray, maxDistance float32) (Pose, float32, bool) {
	hit, ok := physics.RayHorizontalRect(ray, p.Center, p.Extents, maxDistance)
	if !ok {
		return Pose{}, 0, false
	}
	return Pose{Position: hit.Point, Rotation: p.Rotation}, hit.Distance, true
}
