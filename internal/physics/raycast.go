package physics

import (
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Collider is implemented by components that occupy a box in world space.
type Collider interface {
	Bounds() AABB
}

// Raycast returns the closest collider hit among objects. Inactive objects and
// objects without a Collider are skipped.
func Raycast(objects []*engine.GameObject, ray rl.Ray, maxDistance float32) (engine.RaycastResult, bool) {
	ray.Direction = rl.Vector3Normalize(ray.Direction)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if !obj.Active {
			continue
		}
		collider := engine.FindComponent[Collider](obj)
		if collider == nil {
			continue
		}
		h, ok := collider.Bounds().IntersectRay(ray, maxDistance)
		if !ok || h.Distance > closest.Distance {
			continue
		}
		closest = engine.RaycastResult{
			GameObject: obj,
			Point:      h.Point,
			Normal:     h.Normal,
			Distance:   h.Distance,
		}
		hit = true
	}

	return closest, hit
}

// RayPlane intersects ray with the plane through point with the given normal.
// Hits behind the origin, or on a plane parallel to the ray, are misses.
func RayPlane(ray rl.Ray, point, normal rl.Vector3) (float32, bool) {
	denom := rl.Vector3DotProduct(normal, ray.Direction)
	if abs(denom) < 1e-6 {
		return 0, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(point, ray.Position), normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RayHorizontalRect intersects ray with an axis-aligned horizontal rectangle
// centred on center, extents being the full X/Z size.
func RayHorizontalRect(ray rl.Ray, center rl.Vector3, extents rl.Vector2, maxDistance float32) (Hit, bool) {
	up := rl.Vector3{Y: 1}
	t, ok := RayPlane(ray, center, up)
	if !ok || t > maxDistance {
		return Hit{}, false
	}
	p := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	if abs(p.X-center.X) > extents.X/2 || abs(p.Z-center.Z) > extents.Y/2 {
		return Hit{}, false
	}
	normal := up
	if ray.Direction.Y > 0 {
		normal = rl.Vector3{Y: -1}
	}
	return Hit{Point: p, Normal: normal, Distance: t}, true
}
