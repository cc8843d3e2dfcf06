package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with the physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess gives components world-level operations without importing the world.
type WorldAccess interface {
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	Raycast(ray rl.Ray, maxDistance float32) (RaycastResult, bool)
}
