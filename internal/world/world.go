package world

import (
	"fmt"

	"arplace/internal/ar"
	"arplace/internal/components"
	"arplace/internal/config"
	"arplace/internal/engine"
	"arplace/internal/physics"
	"arplace/internal/placement"
	"arplace/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	TagSurface   = "surface"
	TagFurniture = "furniture"

	FloorSize = 20.0
)

var (
	_ engine.WorldAccess    = (*World)(nil)
	_ placement.Host        = (*World)(nil)
	_ placement.SceneSink   = (*World)(nil)
	_ placement.Display     = (*World)(nil)
	_ placement.Application = (*World)(nil)
)

// World owns the scene and the simulated AR session, and is the host the
// placement script resolves its collaborators from.
type World struct {
	Scene   *engine.Scene
	Session *ar.SimulatedSession
	Device  *ar.Device
	HUD     *ui.HUD

	window   config.WindowConfig
	root     *zap.Logger
	log      *zap.Logger
	pointer  ar.PointerTouch
	frame    placement.FrameInput
	lowPower bool
	quit     bool

	// setFPS applies the frame cap; swapped out in tests.
	setFPS func(fps int32)
}

func New(cfg config.Config, room ar.RoomFile, hud *ui.HUD, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Scene:  engine.NewScene("Main"),
		Device: room.Device.NewDevice(),
		HUD:    hud,
		window: cfg.Window,
		root:   log,
		log:    log.Named("world"),
		setFPS: rl.SetTargetFPS,
	}
	w.Scene.World = w
	w.Session = ar.NewSimulatedSession(room, w.Device, w)
	w.Session.SetMaxDistance(cfg.Placement.MaxRaycastDistance)
	w.Session.SetViewport(float32(cfg.Window.Width), float32(cfg.Window.Height))
	return w
}

// Initialize adds the placement script and starts the scene.
func (w *World) Initialize(script *placement.Script) {
	obj := engine.NewGameObject("ARPlacement")
	obj.AddComponent(script)
	w.Scene.AddGameObject(obj)
	w.Scene.Start()
}

// BeginFrame samples the pointer and builds this frame's placement input.
func (w *World) BeginFrame(pointerDown bool, pointer rl.Vector2, width, height float32) {
	w.Session.SetViewport(width, height)
	in := placement.FrameInput{
		ScreenWidth:  width,
		ScreenHeight: height,
		Status:       w.Session.SessionStatus(),
	}
	if touch, ok := w.pointer.Sample(pointerDown, pointer); ok {
		in.Touch = &touch
		in.TouchCount = 1
	}
	w.frame = in
}

func (w *World) Update(deltaTime float32) {
	w.Session.Update(deltaTime)
	w.Scene.Update(deltaTime)
}

// Draw renders the floor grid, detected surfaces and furniture. Call it between
// BeginMode3D and EndMode3D.
func (w *World) Draw() {
	rl.DrawGrid(int32(FloorSize), 1)
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
}

// engine.WorldAccess

func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	g.Start()
}

func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.RemoveGameObject(g)
}

func (w *World) Raycast(ray rl.Ray, maxDistance float32) (engine.RaycastResult, bool) {
	return physics.Raycast(w.Scene.GameObjects, ray, maxDistance)
}

// placement.SceneSink

func (w *World) InstantiateSurfaceVisual(surface *ar.Plane) {
	g := engine.NewGameObject(fmt.Sprintf("Surface_%s", shortID(surface.ID)))
	g.Tags = append(g.Tags, TagSurface)
	g.AddComponent(components.NewSurfaceVisual(surface))
	w.SpawnObject(g)
	w.log.Info("surface visual created",
		zap.String("surface", surface.ID),
		zap.Float32("width", surface.Extents.X),
		zap.Float32("depth", surface.Extents.Y))
}

func (w *World) InstantiateObject(kind placement.Kind, pose ar.Pose) engine.GameObjectRef {
	parts, color := furnitureModel(kind)
	g := engine.NewGameObject(kind.String())
	g.Tags = append(g.Tags, TagFurniture)
	g.Transform.Position = pose.Position
	g.Transform.Rotation = pose.Rotation

	g.AddComponent(components.NewFurnitureRenderer(parts, color))
	center, size := components.PartsBounds(parts)
	collider := components.NewBoxCollider(size)
	collider.Offset = center
	g.AddComponent(collider)

	w.SpawnObject(g)
	return engine.RefTo(g)
}

func (w *World) DestroyObject(ref engine.GameObjectRef) {
	if g := ref.Get(w.Scene); g != nil {
		w.Destroy(g)
	}
}

func (w *World) SetObjectPose(ref engine.GameObjectRef, pose ar.Pose) {
	if g := ref.Get(w.Scene); g != nil {
		g.Transform.Position = pose.Position
		g.Transform.Rotation = pose.Rotation
	}
}

// SetHighlighted toggles the selection outline on a furniture object.
func (w *World) SetHighlighted(ref engine.GameObjectRef, on bool) {
	g := ref.Get(w.Scene)
	if g == nil {
		return
	}
	if r := engine.GetComponent[*components.FurnitureRenderer](g); r != nil {
		r.Selected = on
	}
}

func furnitureModel(kind placement.Kind) ([]components.Part, rl.Color) {
	if kind == placement.KindChair {
		return components.ChairParts(), rl.Orange
	}
	return components.TableParts(), rl.Brown
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// placement.Display

func (w *World) SetLowPower(lowPower bool) {
	if lowPower == w.lowPower {
		return
	}
	w.lowPower = lowPower
	fps := w.window.TargetFPS
	if lowPower {
		fps = w.window.LowPowerFPS
	}
	w.setFPS(int32(fps))
	w.log.Debug("frame rate changed", zap.Bool("lowPower", lowPower), zap.Int("fps", fps))
}

func (w *World) LowPower() bool { return w.lowPower }

// placement.Application

func (w *World) Quit() {
	w.log.Info("quit requested")
	w.quit = true
}

func (w *World) QuitRequested() bool { return w.quit }

// placement.Host

func (w *World) Tracking() placement.TrackingProvider { return w.Session }
func (w *World) Sink() placement.SceneSink            { return w }
func (w *World) UI() placement.UISurface              { return w.HUD }
func (w *World) Notifier() placement.Notifier         { return w.HUD }
func (w *World) Display() placement.Display           { return w }
func (w *World) App() placement.Application           { return w }
func (w *World) FrameInput() placement.FrameInput     { return w.frame }
func (w *World) Logger() *zap.Logger                  { return w.root }
