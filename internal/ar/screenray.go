package ar

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ScreenRay unprojects a screen position through camera for a width x height
// viewport. Screen coordinates have their origin at the top left.
func ScreenRay(camera rl.Camera3D, screen rl.Vector2, width, height float32) rl.Ray {
	if width <= 0 || height <= 0 {
		forward := rl.Vector3Normalize(rl.Vector3Subtract(camera.Target, camera.Position))
		return rl.Ray{Position: camera.Position, Direction: forward}
	}
	return rl.GetScreenToWorldRayEx(screen, camera, int32(width), int32(height))
}
