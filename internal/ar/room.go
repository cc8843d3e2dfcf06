package ar

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RoomFile describes the surfaces a SimulatedSession will "discover" and where the
// device starts.
type RoomFile struct {
	Planes []PlaneDef `json:"planes"`
	Device DeviceDef  `json:"device"`
}

type PlaneDef struct {
	Center      [3]float32 `json:"center"`
	Size        [2]float32 `json:"size"`
	Yaw         float32    `json:"yaw,omitempty"`
	DetectAfter float32    `json:"detectAfter,omitempty"` // seconds of tracking before detection
	Color       string     `json:"color,omitempty"`
}

type DeviceDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch"`
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"Beige":     rl.Beige,
	"Brown":     rl.Brown,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.SkyBlue
}

// LoadRoom reads and validates a room file.
func LoadRoom(path string) (RoomFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RoomFile{}, fmt.Errorf("read room %s: %w", path, err)
	}
	room, err := ParseRoom(data)
	if err != nil {
		return RoomFile{}, fmt.Errorf("room %s: %w", path, err)
	}
	return room, nil
}

func ParseRoom(data []byte) (RoomFile, error) {
	var room RoomFile
	if err := json.Unmarshal(data, &room); err != nil {
		return RoomFile{}, fmt.Errorf("parse room: %w", err)
	}
	for i, def := range room.Planes {
		if def.Size[0] <= 0 || def.Size[1] <= 0 {
			return RoomFile{}, fmt.Errorf("plane %d: size must be positive, got %v", i, def.Size)
		}
		if def.DetectAfter < 0 {
			return RoomFile{}, fmt.Errorf("plane %d: detectAfter must not be negative", i)
		}
	}
	return room, nil
}

// NewPlane builds the plane described by def. It starts actively tracked.
func (def PlaneDef) NewPlane() *Plane {
	p := NewPlane(
		rl.Vector3{X: def.Center[0], Y: def.Center[1], Z: def.Center[2]},
		rl.Vector2{X: def.Size[0], Y: def.Size[1]},
		YawRotation(def.Yaw),
	)
	p.Color = lookupColor(def.Color)
	return p
}

func (def DeviceDef) NewDevice() *Device {
	d := NewDevice(rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]})
	d.Yaw = def.Yaw
	d.Pitch = def.Pitch
	return d
}
