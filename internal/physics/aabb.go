package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
// Negative sizes are treated as their absolute value.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// IntersectRay runs a slab test against ray. The direction must be normalized.
// A ray starting inside the box reports the exit point.
func (a AABB) IntersectRay(ray rl.Ray, maxDistance float32) (Hit, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	origin := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	lo := [3]float32{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]float32{a.Max.X, a.Max.Y, a.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return Hit{}, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	return Hit{Point: point, Normal: a.faceNormal(point), Distance: t}, true
}

func (a AABB) faceNormal(p rl.Vector3) rl.Vector3 {
	const epsilon = float32(0.001)
	switch {
	case abs(p.X-a.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(p.X-a.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(p.Y-a.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(p.Y-a.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(p.Z-a.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
