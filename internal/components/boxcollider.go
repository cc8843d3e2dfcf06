package components

import (
	"arplace/internal/engine"
	"arplace/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// Bounds returns the world-space AABB enclosing the box after the owner's
// rotation and scale are applied.
func (b *BoxCollider) Bounds() physics.AABB {
	g := b.GetGameObject()
	if g == nil {
		return physics.NewAABBFromCenter(b.Offset, b.Size)
	}
	t := g.Transform
	size := rl.Vector3Multiply(b.Size, t.Scale)
	offset := rl.Vector3RotateByQuaternion(rl.Vector3Multiply(b.Offset, t.Scale), t.Rotation)
	center := rl.Vector3Add(t.Position, offset)

	half := rl.Vector3Scale(size, 0.5)
	var extent rl.Vector3
	for _, axis := range []rl.Vector3{{X: half.X}, {Y: half.Y}, {Z: half.Z}} {
		r := rl.Vector3RotateByQuaternion(axis, t.Rotation)
		extent.X += abs(r.X)
		extent.Y += abs(r.Y)
		extent.Z += abs(r.Z)
	}
	return physics.AABB{
		Min: rl.Vector3Subtract(center, extent),
		Max: rl.Vector3Add(center, extent),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
