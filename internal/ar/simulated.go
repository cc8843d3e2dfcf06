package ar

import (
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraSource supplies the current AR camera.
type CameraSource interface {
	Camera() rl.Camera3D
}

type pendingPlane struct {
	plane    *Plane
	detectAt float32
}

// SimulatedSession is a desktop tracking provider. Planes from a room file are
// "detected" after their delay has elapsed in tracked time; scene raycasts go
// through the engine world.
type SimulatedSession struct {
	status      SessionStatus
	camera      CameraSource
	world       engine.WorldAccess
	width       float32
	height      float32
	maxDistance float32

	trackedTime float32
	pending     []pendingPlane
	detected    []*Plane
	fresh       []*Plane
}

func NewSimulatedSession(room RoomFile, camera CameraSource, world engine.WorldAccess) *SimulatedSession {
	s := &SimulatedSession{
		status:      SessionTracking,
		camera:      camera,
		world:       world,
		maxDistance: 100,
	}
	for _, def := range room.Planes {
		s.pending = append(s.pending, pendingPlane{plane: def.NewPlane(), detectAt: def.DetectAfter})
	}
	return s
}

func (s *SimulatedSession) SetViewport(width, height float32) {
	s.width = width
	s.height = height
}

func (s *SimulatedSession) SetMaxDistance(d float32) {
	s.maxDistance = d
}

// SetStatus changes the reported status. Leaving Tracking pauses every detected
// plane; returning resumes them.
func (s *SimulatedSession) SetStatus(status SessionStatus) {
	s.status = status
	state := TrackingStatePaused
	if status == SessionTracking {
		state = TrackingStateTracking
	}
	for _, p := range s.detected {
		if p.State != TrackingStateStopped {
			p.State = state
		}
	}
}

// Update advances tracked time and detects any planes that are due.
func (s *SimulatedSession) Update(deltaTime float32) {
	if s.status != SessionTracking {
		return
	}
	s.trackedTime += deltaTime

	remaining := s.pending[:0]
	for _, pp := range s.pending {
		if pp.detectAt <= s.trackedTime {
			s.detected = append(s.detected, pp.plane)
			s.fresh = append(s.fresh, pp.plane)
			continue
		}
		remaining = append(remaining, pp)
	}
	s.pending = remaining
}

func (s *SimulatedSession) SessionStatus() SessionStatus {
	return s.status
}

// NewSurfaces returns planes detected since the previous call.
func (s *SimulatedSession) NewSurfaces() []*Plane {
	fresh := s.fresh
	s.fresh = nil
	return fresh
}

// AllSurfaces returns every detected plane. The slice is a copy; the planes are shared.
func (s *SimulatedSession) AllSurfaces() []*Plane {
	out := make([]*Plane, len(s.detected))
	copy(out, s.detected)
	return out
}

func (s *SimulatedSession) ScreenRay(screen rl.Vector2) rl.Ray {
	return ScreenRay(s.camera.Camera(), screen, s.width, s.height)
}

// RaycastSurfaces returns the nearest actively tracked plane under screen.
func (s *SimulatedSession) RaycastSurfaces(screen rl.Vector2) (Pose, bool) {
	ray := s.ScreenRay(screen)
	var best Pose
	bestDist := s.maxDistance
	found := false
	for _, p := range s.detected {
		if !p.IsActivelyTracking() {
			continue
		}
		pose, dist, ok := p.Raycast(ray, s.maxDistance)
		if ok && dist <= bestDist {
			best, bestDist, found = pose, dist, true
		}
	}
	return best, found
}

// RaycastScene casts ray against colliders in the world.
func (s *SimulatedSession) RaycastScene(ray rl.Ray, maxDistance float32) (engine.GameObjectRef, Pose, bool) {
	if s.world == nil {
		return engine.GameObjectRef{}, Pose{}, false
	}
	hit, ok := s.world.Raycast(ray, maxDistance)
	if !ok || hit.GameObject == nil {
		return engine.GameObjectRef{}, Pose{}, false
	}
	return engine.RefTo(hit.GameObject), Pose{Position: hit.Point, Rotation: hit.GameObject.Transform.Rotation}, true
}
