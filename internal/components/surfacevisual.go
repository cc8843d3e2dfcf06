package components

import (
	"arplace/internal/ar"
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SurfaceVisual draws a detected plane. It holds the plane by reference, so it
// follows the plane's tracking state and hides while tracking is paused.
type SurfaceVisual struct {
	engine.BaseComponent
	Plane *ar.Plane
	Alpha float32
}

func NewSurfaceVisual(plane *ar.Plane) *SurfaceVisual {
	return &SurfaceVisual{Plane: plane, Alpha: 0.35}
}

func (s *SurfaceVisual) Visible() bool {
	return s.Plane != nil && s.Plane.IsActivelyTracking()
}

func (s *SurfaceVisual) Draw() {
	if !s.Visible() {
		return
	}
	p := s.Plane
	// lifted slightly so furniture feet don't z-fight with it
	center := rl.Vector3Add(p.Center, rl.Vector3{Y: 0.002})
	rl.DrawPlane(center, p.Extents, rl.Fade(p.Color, s.Alpha))
	rl.DrawCubeWiresV(center, rl.Vector3{X: p.Extents.X, Z: p.Extents.Y}, p.Color)
}
