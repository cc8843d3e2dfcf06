package components

import (
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Part is one box of a procedural model, in the owner's local space.
type Part struct {
	Offset rl.Vector3 // centre of the box
	Size   rl.Vector3
}

// TableParts is a 1.2m x 0.8m table, 0.75m tall.
func TableParts() []Part {
	parts := []Part{{Offset: rl.Vector3{Y: 0.725}, Size: rl.Vector3{X: 1.2, Y: 0.05, Z: 0.8}}}
	for _, x := range []float32{-0.55, 0.55} {
		for _, z := range []float32{-0.35, 0.35} {
			parts = append(parts, Part{
				Offset: rl.Vector3{X: x, Y: 0.35, Z: z},
				Size:   rl.Vector3{X: 0.05, Y: 0.7, Z: 0.05},
			})
		}
	}
	return parts
}

// ChairParts is a 0.45m square chair with a backrest on its -Z side.
func ChairParts() []Part {
	parts := []Part{
		{Offset: rl.Vector3{Y: 0.45}, Size: rl.Vector3{X: 0.45, Y: 0.05, Z: 0.45}},
		{Offset: rl.Vector3{Y: 0.725, Z: -0.205}, Size: rl.Vector3{X: 0.45, Y: 0.5, Z: 0.04}},
	}
	for _, x := range []float32{-0.19, 0.19} {
		for _, z := range []float32{-0.19, 0.19} {
			parts = append(parts, Part{
				Offset: rl.Vector3{X: x, Y: 0.2125, Z: z},
				Size:   rl.Vector3{X: 0.04, Y: 0.425, Z: 0.04},
			})
		}
	}
	return parts
}

// PartsBounds returns the centre and size of the local box enclosing parts.
func PartsBounds(parts []Part) (center, size rl.Vector3) {
	if len(parts) == 0 {
		return rl.Vector3{}, rl.Vector3{}
	}
	half := rl.Vector3Scale(parts[0].Size, 0.5)
	lo := rl.Vector3Subtract(parts[0].Offset, half)
	hi := rl.Vector3Add(parts[0].Offset, half)
	for _, p := range parts[1:] {
		half = rl.Vector3Scale(p.Size, 0.5)
		lo = rl.Vector3Min(lo, rl.Vector3Subtract(p.Offset, half))
		hi = rl.Vector3Max(hi, rl.Vector3Add(p.Offset, half))
	}
	return rl.Vector3Scale(rl.Vector3Add(lo, hi), 0.5), rl.Vector3Subtract(hi, lo)
}

// FurnitureRenderer draws a model built from boxes. A selected model gets a
// highlight outline.
type FurnitureRenderer struct {
	engine.BaseComponent
	Parts          []Part
	Color          rl.Color
	HighlightColor rl.Color
	Selected       bool
}

func NewFurnitureRenderer(parts []Part, color rl.Color) *FurnitureRenderer {
	return &FurnitureRenderer{
		Parts:          parts,
		Color:          color,
		HighlightColor: rl.Gold,
	}
}

func (f *FurnitureRenderer) Draw() {
	g := f.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	t := g.Transform

	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(t.Rotation, &axis, &angle)

	rl.PushMatrix()
	rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	rl.Scalef(t.Scale.X, t.Scale.Y, t.Scale.Z)

	for _, p := range f.Parts {
		rl.DrawCubeV(p.Offset, p.Size, f.Color)
		rl.DrawCubeWiresV(p.Offset, p.Size, rl.Fade(rl.Black, 0.4))
	}
	if f.Selected {
		center, size := PartsBounds(f.Parts)
		rl.DrawCubeWiresV(center, rl.Vector3AddValue(size, 0.04), f.HighlightColor)
	}

	rl.PopMatrix()
}
