package placement

import (
	"arplace/internal/ar"
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// TrackingProvider is the AR engine: session status, detected surfaces and raycasts.
type TrackingProvider interface {
	SessionStatus() ar.SessionStatus
	NewSurfaces() []*ar.Plane
	AllSurfaces() []*ar.Plane
	RaycastSurfaces(screen rl.Vector2) (ar.Pose, bool)
	ScreenRay(screen rl.Vector2) rl.Ray
	RaycastScene(ray rl.Ray, maxDistance float32) (engine.GameObjectRef, ar.Pose, bool)
}

// SceneSink renders whatever the controller places.
type SceneSink interface {
	InstantiateSurfaceVisual(surface *ar.Plane)
	InstantiateObject(kind Kind, pose ar.Pose) engine.GameObjectRef
	DestroyObject(ref engine.GameObjectRef)
	SetObjectPose(ref engine.GameObjectRef, pose ar.Pose)
}

// UISurface is the on-screen chrome the controller toggles.
type UISurface interface {
	SetSearchingMessageVisible(visible bool)
	SetPlacementMessageVisible(visible bool)
	SetCreateButtonsEnabled(enabled bool)
	SetRemoveButtonEnabled(enabled bool)
	SetQuitModalVisible(visible bool)
	// ButtonRegion is the screen area owned by UI buttons. Touches inside it never
	// reach placement logic.
	ButtonRegion() rl.Rectangle
}

// Notifier shows a short platform message. It must not block.
type Notifier interface {
	ShowToast(message string)
}

// Display receives power hints: low power while the session is not tracking.
type Display interface {
	SetLowPower(lowPower bool)
}

// Application ends the process.
type Application interface {
	Quit()
}

// Scheduler runs deferred work on the frame thread.
type Scheduler interface {
	After(seconds float32, fn func()) *engine.Timer
}

// Deps bundles a Controller's collaborators. Notifier, Display and Logger are
// optional.
type Deps struct {
	Tracking  TrackingProvider
	Sink      SceneSink
	UI        UISurface
	Notifier  Notifier
	Display   Display
	App       Application
	Scheduler Scheduler
	Logger    *zap.Logger
}

// FrameInput is the per-frame snapshot the host hands to OnFrame.
type FrameInput struct {
	Touch        *ar.Touch // first active touch, nil when none
	TouchCount   int
	ScreenWidth  float32
	ScreenHeight float32
	Status       ar.SessionStatus
}

func (in FrameInput) screenCenter() rl.Vector2 {
	return rl.Vector2{X: in.ScreenWidth / 2, Y: in.ScreenHeight / 2}
}

type nopNotifier struct{}

func (nopNotifier) ShowToast(string) {}

type nopDisplay struct{}

func (nopDisplay) SetLowPower(bool) {}
