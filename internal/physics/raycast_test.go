package physics

import (
	"testing"

	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

type boxComponent struct {
	engine.BaseComponent
	size rl.Vector3
}

func (b *boxComponent) Bounds() AABB {
	return NewAABBFromCenter(b.GetGameObject().Transform.Position, b.size)
}

func boxAt(name string, pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(&boxComponent{size: rl.Vector3{X: 1, Y: 1, Z: 1}})
	return g
}

func downRay(x, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: 10, Z: z}, Direction: rl.Vector3{Y: -1}}
}

func TestAABBIntersectRayTopFace(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := box.IntersectRay(downRay(0, 0), 100)
	require.True(t, ok)
	require.InDelta(t, 9, hit.Distance, 1e-5)
	require.Equal(t, rl.Vector3{Y: 1}, hit.Normal)
	require.InDelta(t, 1, hit.Point.Y, 1e-5)
}

func TestAABBIntersectRayMiss(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	_, ok := box.IntersectRay(downRay(5, 0), 100)
	require.False(t, ok)

	_, ok = box.IntersectRay(downRay(0, 0), 5)
	require.False(t, ok, "hit beyond maxDistance must be ignored")
}

func TestAABBIntersectRayFromInside(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	ray := rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{X: 1}}

	hit, ok := box.IntersectRay(ray, 100)
	require.True(t, ok)
	require.InDelta(t, 1, hit.Distance, 1e-5)
	require.Equal(t, rl.Vector3{X: 1}, hit.Normal)
}

func TestAABBNegativeSizeAndContains(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1}, rl.Vector3{X: -2, Y: 2, Z: 2})
	require.True(t, box.Contains(rl.Vector3{X: 1.5}))
	require.False(t, box.Contains(rl.Vector3{X: 2.5}))
	require.Equal(t, rl.Vector3{X: 1}, box.Center())
}

func TestRaycastPicksClosest(t *testing.T) {
	low := boxAt("low", rl.Vector3{Y: 0})
	high := boxAt("high", rl.Vector3{Y: 3})
	bare := engine.NewGameObject("no-collider")

	res, ok := Raycast([]*engine.GameObject{low, bare, high}, downRay(0, 0), 100)
	require.True(t, ok)
	require.Same(t, high, res.GameObject)
	require.InDelta(t, 6.5, res.Distance, 1e-5)
}

func TestRaycastSkipsInactive(t *testing.T) {
	g := boxAt("hidden", rl.Vector3{})
	g.Active = false

	_, ok := Raycast([]*engine.GameObject{g}, downRay(0, 0), 100)
	require.False(t, ok)
}

func TestRaycastNormalizesDirection(t *testing.T) {
	g := boxAt("box", rl.Vector3{})
	ray := rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{Y: -5}}

	res, ok := Raycast([]*engine.GameObject{g}, ray, 100)
	require.True(t, ok)
	require.InDelta(t, 9.5, res.Distance, 1e-5)
}

func TestRayHorizontalRect(t *testing.T) {
	center := rl.Vector3{X: 0, Y: 0.5, Z: 0}
	extents := rl.Vector2{X: 4, Y: 2}

	hit, ok := RayHorizontalRect(downRay(1.5, 0.9), center, extents, 100)
	require.True(t, ok)
	require.InDelta(t, 0.5, hit.Point.Y, 1e-5)
	require.Equal(t, rl.Vector3{Y: 1}, hit.Normal)

	_, ok = RayHorizontalRect(downRay(1.5, 1.1), center, extents, 100)
	require.False(t, ok, "outside Z extent")

	up := rl.Ray{Position: rl.Vector3{Y: 1}, Direction: rl.Vector3{Y: 1}}
	_, ok = RayHorizontalRect(up, center, extents, 100)
	require.False(t, ok, "plane behind origin")

	sideways := rl.Ray{Position: rl.Vector3{Y: 1}, Direction: rl.Vector3{X: 1}}
	_, ok = RayPlane(sideways, center, rl.Vector3{Y: 1})
	require.False(t, ok, "parallel ray")
}
