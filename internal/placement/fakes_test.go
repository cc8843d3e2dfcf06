package placement

import (
	"arplace/internal/ar"
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeTracking struct {
	status      ar.SessionStatus
	fresh       []*ar.Plane
	all         []*ar.Plane
	surfaceHits map[rl.Vector2]ar.Pose
	sceneHits   map[rl.Vector2]engine.GameObjectRef

	sceneRaycasts int
}

func newFakeTracking() *fakeTracking {
	return &fakeTracking{
		status:      ar.SessionTracking,
		surfaceHits: map[rl.Vector2]ar.Pose{},
		sceneHits:   map[rl.Vector2]engine.GameObjectRef{},
	}
}

// addSurface reports a new, actively tracked plane on the next frame.
func (f *fakeTracking) addSurface() *ar.Plane {
	p := ar.NewPlane(rl.Vector3{}, rl.Vector2{X: 4, Y: 4}, rl.QuaternionIdentity())
	f.fresh = append(f.fresh, p)
	f.all = append(f.all, p)
	return p
}

func (f *fakeTracking) SessionStatus() ar.SessionStatus { return f.status }

func (f *fakeTracking) NewSurfaces() []*ar.Plane {
	fresh := f.fresh
	f.fresh = nil
	return fresh
}

func (f *fakeTracking) AllSurfaces() []*ar.Plane { return f.all }

func (f *fakeTracking) RaycastSurfaces(screen rl.Vector2) (ar.Pose, bool) {
	pose, ok := f.surfaceHits[screen]
	return pose, ok
}

// ScreenRay encodes the screen position in the ray origin so RaycastScene can
// look it up.
func (f *fakeTracking) ScreenRay(screen rl.Vector2) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: screen.X, Y: screen.Y}, Direction: rl.Vector3{Z: -1}}
}

func (f *fakeTracking) RaycastScene(ray rl.Ray, maxDistance float32) (engine.GameObjectRef, ar.Pose, bool) {
	f.sceneRaycasts++
	ref, ok := f.sceneHits[rl.Vector2{X: ray.Position.X, Y: ray.Position.Y}]
	return ref, ar.Pose{}, ok
}

type fakeSink struct {
	nextUID   uint64
	visuals   []*ar.Plane
	objects   map[uint64]ar.Pose
	kinds     map[uint64]Kind
	destroyed []engine.GameObjectRef
	poseSets  int
}

func newFakeSink() *fakeSink {
	return &fakeSink{nextUID: 1000, objects: map[uint64]ar.Pose{}, kinds: map[uint64]Kind{}}
}

func (s *fakeSink) InstantiateSurfaceVisual(surface *ar.Plane) {
	s.visuals = append(s.visuals, surface)
}

func (s *fakeSink) InstantiateObject(kind Kind, pose ar.Pose) engine.GameObjectRef {
	s.nextUID++
	s.objects[s.nextUID] = pose
	s.kinds[s.nextUID] = kind
	return engine.GameObjectRef{UID: s.nextUID}
}

func (s *fakeSink) DestroyObject(ref engine.GameObjectRef) {
	delete(s.objects, ref.UID)
	s.destroyed = append(s.destroyed, ref)
}

func (s *fakeSink) SetObjectPose(ref engine.GameObjectRef, pose ar.Pose) {
	s.poseSets++
	s.objects[ref.UID] = pose
}

type fakeUI struct {
	searching     bool
	placementMsg  bool
	createEnabled bool
	removeEnabled bool
	quitModal     bool
	region        rl.Rectangle
}

func (u *fakeUI) SetSearchingMessageVisible(v bool) { u.searching = v }
func (u *fakeUI) SetPlacementMessageVisible(v bool) { u.placementMsg = v }
func (u *fakeUI) SetCreateButtonsEnabled(v bool)    { u.createEnabled = v }
func (u *fakeUI) SetRemoveButtonEnabled(v bool)     { u.removeEnabled = v }
func (u *fakeUI) SetQuitModalVisible(v bool)        { u.quitModal = v }
func (u *fakeUI) ButtonRegion() rl.Rectangle        { return u.region }

type fakeNotifier struct{ toasts []string }

func (n *fakeNotifier) ShowToast(message string) { n.toasts = append(n.toasts, message) }

type fakeDisplay struct{ lowPower bool }

func (d *fakeDisplay) SetLowPower(v bool) { d.lowPower = v }

type fakeApp struct{ quits int }

func (a *fakeApp) Quit() { a.quits++ }

type harness struct {
	tracking  *fakeTracking
	sink      *fakeSink
	ui        *fakeUI
	notifier  *fakeNotifier
	display   *fakeDisplay
	app       *fakeApp
	scheduler *engine.Scheduler
}

func (h *harness) deps() Deps {
	return Deps{
		Tracking:  h.tracking,
		Sink:      h.sink,
		UI:        h.ui,
		Notifier:  h.notifier,
		Display:   h.display,
		App:       h.app,
		Scheduler: h.scheduler,
	}
}

func newHarness() *harness {
	return &harness{
		tracking: newFakeTracking(),
		sink:     newFakeSink(),
		// bottom strip of an 800x600 screen
		ui:        &fakeUI{region: rl.Rectangle{X: 0, Y: 500, Width: 800, Height: 100}},
		notifier:  &fakeNotifier{},
		display:   &fakeDisplay{},
		app:       &fakeApp{},
		scheduler: engine.NewScheduler(),
	}
}
