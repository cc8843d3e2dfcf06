package ar

import (
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is a position and orientation in world space.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

func NewPose(position rl.Vector3, rotation rl.Quaternion) Pose {
	return Pose{Position: position, Rotation: rotation}
}

// IsZero reports whether p is the zero value, which is never produced by a hit.
func (p Pose) IsZero() bool {
	return p == Pose{}
}

// WithPosition returns p moved to position, keeping its rotation.
func (p Pose) WithPosition(position rl.Vector3) Pose {
	p.Position = position
	return p
}

// Euler returns the orientation as pitch/yaw/roll in degrees.
func (p Pose) Euler() rl.Vector3 {
	return engine.Transform{Rotation: p.Rotation}.EulerDegrees()
}

// YawRotation returns a rotation of yawDegrees about the world up axis.
func YawRotation(yawDegrees float32) rl.Quaternion {
	return rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, yawDegrees*rl.Deg2rad)
}
