package game

import (
	"fmt"
	"time"

	"arplace/internal/ar"
	"arplace/internal/audio"
	"arplace/internal/config"
	"arplace/internal/placement"
	"arplace/internal/ui"
	"arplace/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Game struct {
	World      *world.World
	HUD        *ui.HUD
	Audio      *audio.CuePlayer
	Controller *placement.Controller
	DebugMode  bool

	cfg config.Config
	log *zap.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the world and starts the placement script. It makes no raylib
// calls, so the window is only needed by Run.
func New(cfg config.Config, room ar.RoomFile, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		HUD:   ui.NewHUD(),
		Audio: audio.NewCuePlayer(cfg.Audio.Volume),
		cfg:   cfg,
		log:   log.Named("game"),
	}
	g.HUD.Layout(float32(cfg.Window.Width), float32(cfg.Window.Height))
	g.World = world.New(cfg, room, g.HUD, log)

	script := placement.NewScript(PlacementConfig(cfg.Placement))
	script.Ready.AddListener(g.bind)
	g.World.Initialize(script)
	return g
}

// PlacementConfig maps the file config onto the controller's.
func PlacementConfig(c config.PlacementConfig) placement.Config {
	return placement.Config{
		UpdateOrientationOnDrag: c.UpdateOrientationOnDrag,
		QuitDelay:               c.QuitDelay,
		MaxRaycastDistance:      c.MaxRaycastDistance,
		AutoQuitOnSessionError:  c.AutoQuitOnSessionError,
	}
}

// bind connects the HUD and audio to a freshly started controller.
func (g *Game) bind(c *placement.Controller) {
	g.Controller = c

	g.HUD.CreateTable.OnClick.AddListener(c.CreateTable)
	g.HUD.CreateChair.OnClick.AddListener(c.CreateChair)
	g.HUD.Remove.OnClick.AddListener(func() { c.Remove() })
	g.HUD.Quit.OnClick.AddListener(c.Quit)
	g.HUD.OnQuitConfirm.AddListener(c.ConfirmQuit)
	g.HUD.OnQuitCancel.AddListener(c.CancelQuit)

	c.Changes.AddListener(g.onChange)
}

func (g *Game) onChange(ch placement.Change) {
	switch ch.Kind {
	case placement.ChangePlaced:
		g.Audio.Play(audio.CuePlace)
	case placement.ChangeSelected:
		g.World.SetHighlighted(ch.Object.Entity, true)
		g.Audio.Play(audio.CueSelect)
	case placement.ChangeDeselected:
		g.World.SetHighlighted(ch.Object.Entity, false)
	case placement.ChangeRemoved:
		g.Audio.Play(audio.CueRemove)
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	// Esc opens the quit dialog instead of closing the window
	rl.SetExitKey(rl.KeyNull)
	ui.InitStyle()

	if g.cfg.Audio.Enabled {
		if err := g.Audio.Initialize(); err != nil {
			g.log.Warn("audio unavailable", zap.Error(err))
		}
		defer g.Audio.Cleanup()
	}

	for !rl.WindowShouldClose() && !g.World.QuitRequested() {
		g.Update()
		g.Draw()
	}
	g.log.Info("exiting")
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.handleKeys()

	width, height := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	g.HUD.Layout(width, height)

	pos, down, released := pointer()
	g.World.Device.Update(deltaTime, deviceInput())
	g.routePointer(pos, down, released, width, height)
	g.World.Update(deltaTime)
	g.HUD.Update(deltaTime)
	g.HUD.SetStatus(g.statusLine())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// routePointer gives the HUD first claim on the pointer. The world only sees it
// held when the HUD does not own it, so a press on the bar or the quit dialog
// never starts a touch.
func (g *Game) routePointer(pos rl.Vector2, down, released bool, width, height float32) {
	owned := g.HUD.HandleInput(pos, down, released)
	g.World.BeginFrame(down && !owned, pos, width, height)
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.setSessionStatus(NextStatus(g.World.Session.SessionStatus()))
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.setSessionStatus(TogglePermission(g.World.Session.SessionStatus()))
	}
	if rl.IsKeyPressed(rl.KeyEscape) && g.Controller != nil && !g.Controller.ModalOpen() {
		g.Controller.Quit()
	}
}

func (g *Game) setSessionStatus(s ar.SessionStatus) {
	g.log.Info("simulated session status", zap.Stringer("status", s))
	g.World.Session.SetStatus(s)
	if s.IsError() {
		g.Audio.Play(audio.CueError)
	}
}

// NextStatus cycles Tracking, NotTracking, ErrorOther, Invalid.
func NextStatus(s ar.SessionStatus) ar.SessionStatus {
	switch s {
	case ar.SessionTracking:
		return ar.SessionNotTracking
	case ar.SessionNotTracking:
		return ar.SessionErrorOther
	case ar.SessionErrorOther:
		return ar.SessionInvalid
	default:
		return ar.SessionTracking
	}
}

// TogglePermission flips between a denied camera permission and Tracking.
func TogglePermission(s ar.SessionStatus) ar.SessionStatus {
	if s == ar.SessionErrorPermissionDenied {
		return ar.SessionTracking
	}
	return ar.SessionErrorPermissionDenied
}

func (g *Game) statusLine() string {
	if g.Controller == nil {
		return g.World.Session.SessionStatus().String()
	}
	return fmt.Sprintf("%s | session %s | %d placed",
		g.Controller.State(), g.World.Session.SessionStatus(), len(g.Controller.PlacedObjects()))
}

// pointer returns the first touch when there is one, otherwise the mouse.
func pointer() (pos rl.Vector2, down, released bool) {
	if rl.GetTouchPointCount() > 0 {
		return rl.GetTouchPosition(0), true, false
	}
	return rl.GetMousePosition(), rl.IsMouseButtonDown(rl.MouseLeftButton), rl.IsMouseButtonReleased(rl.MouseLeftButton)
}

func deviceInput() ar.DeviceInput {
	in := ar.DeviceInput{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Rise:    rl.IsKeyDown(rl.KeyE),
		Sink:    rl.IsKeyDown(rl.KeyQ),
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		in.Look = rl.GetMouseDelta()
	}
	return in
}

func (g *Game) Draw() {
	camera := g.World.Device.Camera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Draw()
	g.drawReticle()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw()
	g.drawDebug()
	rl.EndDrawing()
}

// drawReticle marks the current placement point.
func (g *Game) drawReticle() {
	if g.Controller == nil || g.Controller.State() == placement.StateSuspended {
		return
	}
	pose, ok := g.Controller.PlacementPoint()
	if !ok {
		return
	}
	p := rl.Vector3Add(pose.Position, rl.Vector3{Y: 0.01})
	rl.DrawCircle3D(p, 0.15, rl.Vector3{X: 1}, 90, rl.White)
	rl.DrawCircle3D(p, 0.02, rl.Vector3{X: 1}, 90, rl.White)
}

func (g *Game) drawDebug() {
	if !g.DebugMode {
		return
	}
	y := int32(rl.GetScreenHeight()) / 4
	rl.DrawFPS(10, y)
	rl.DrawText("WASD/QE move, right mouse look", 10, y+25, 16, rl.LightGray)
	rl.DrawText("F2 cycle session, F3 permission error, Esc quit", 10, y+45, 16, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, y+70, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, y+90, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Objects: %d  Timers: %d", len(g.World.Scene.GameObjects), g.World.Scene.Timers.Pending()), 10, y+110, 16, rl.Green)
	if g.Controller == nil {
		return
	}
	if sel, ok := g.Controller.Selected(); ok {
		rl.DrawText(fmt.Sprintf("Selected: %s yaw %.1f", sel.Kind, sel.Pose.Euler().Y), 10, y+130, 16, rl.Yellow)
	}
}
