package ar

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DeviceInput is one frame of handheld-device motion, sampled by the host.
type DeviceInput struct {
	Forward, Back, Left, Right, Rise, Sink bool
	Look                                   rl.Vector2 // pointer delta in pixels
}

// Device simulates the phone the user is holding: a free-flying camera.
type Device struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32 // units per second
	LookSpeed float32 // degrees per pixel
	Fovy      float32
}

func NewDevice(pos rl.Vector3) *Device {
	return &Device{
		Position:  pos,
		Yaw:       -90,
		Pitch:     -30,
		MoveSpeed: 1.5,
		LookSpeed: 0.15,
		Fovy:      60,
	}
}

func (d *Device) Update(deltaTime float32, in DeviceInput) {
	d.Yaw += in.Look.X * d.LookSpeed
	d.Pitch -= in.Look.Y * d.LookSpeed
	if d.Pitch > 89 {
		d.Pitch = 89
	}
	if d.Pitch < -89 {
		d.Pitch = -89
	}

	forward, right := d.directions()

	var move rl.Vector3
	if in.Forward {
		move = rl.Vector3Add(move, forward)
	}
	if in.Back {
		move = rl.Vector3Subtract(move, forward)
	}
	if in.Right {
		move = rl.Vector3Add(move, right)
	}
	if in.Left {
		move = rl.Vector3Subtract(move, right)
	}
	if in.Rise {
		move.Y++
	}
	if in.Sink {
		move.Y--
	}
	if rl.Vector3Length(move) > 0 {
		move = rl.Vector3Scale(rl.Vector3Normalize(move), d.MoveSpeed*deltaTime)
		d.Position = rl.Vector3Add(d.Position, move)
	}
}

// directions returns the horizontal forward and right vectors.
func (d *Device) directions() (forward, right rl.Vector3) {
	yawRad := float64(d.Yaw) * math.Pi / 180
	forward = rl.Vector3{X: float32(math.Cos(yawRad)), Z: float32(math.Sin(yawRad))}
	right = rl.Vector3{X: float32(-math.Sin(yawRad)), Z: float32(math.Cos(yawRad))}
	return
}

func (d *Device) Camera() rl.Camera3D {
	yawRad := float64(d.Yaw) * math.Pi / 180
	pitchRad := float64(d.Pitch) * math.Pi / 180

	target := rl.Vector3{
		X: d.Position.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: d.Position.Y + float32(math.Sin(pitchRad)),
		Z: d.Position.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   d.Position,
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       d.Fovy,
		Projection: rl.CameraPerspective,
	}
}
