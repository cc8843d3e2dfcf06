// Package placement drives furniture placement on detected AR surfaces: it tracks a
// placement point under the screen centre, turns a single touch into select and drag
// gestures, and owns the collection of placed objects.
package placement

import (
	"errors"
	"fmt"

	"arplace/internal/ar"
	"arplace/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingDependency is returned by NewController when a required collaborator is nil.
var ErrMissingDependency = errors.New("placement: missing dependency")

// Controller is single-threaded: OnFrame and every command must be called from the
// frame loop.
type Controller struct {
	cfg       Config
	tracking  TrackingProvider
	sink      SceneSink
	ui        UISurface
	notifier  Notifier
	display   Display
	app       Application
	scheduler Scheduler
	log       *zap.Logger

	placed         []PlacedObject
	selectedID     string
	placement      ar.Pose
	placementValid bool
	surfaceTracked bool
	status         ar.SessionStatus
	modal          bool
	quitting       bool
	quitTimer      *engine.Timer
	state          State

	// Changes fires after every placement, selection, move and removal.
	Changes engine.EventWithArg[Change]
}

// NewController validates deps and returns a controller in the Suspended state.
func NewController(cfg Config, deps Deps) (*Controller, error) {
	switch {
	case deps.Tracking == nil:
		return nil, fmt.Errorf("%w: tracking provider", ErrMissingDependency)
	case deps.Sink == nil:
		return nil, fmt.Errorf("%w: scene sink", ErrMissingDependency)
	case deps.UI == nil:
		return nil, fmt.Errorf("%w: ui surface", ErrMissingDependency)
	case deps.App == nil:
		return nil, fmt.Errorf("%w: application", ErrMissingDependency)
	case deps.Scheduler == nil:
		return nil, fmt.Errorf("%w: scheduler", ErrMissingDependency)
	}

	c := &Controller{
		cfg:       cfg,
		tracking:  deps.Tracking,
		sink:      deps.Sink,
		ui:        deps.UI,
		notifier:  deps.Notifier,
		display:   deps.Display,
		app:       deps.App,
		scheduler: deps.Scheduler,
		log:       deps.Logger,
		status:    ar.SessionNotTracking,
		state:     StateSuspended,
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.display == nil {
		c.display = nopDisplay{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c, nil
}

// OnFrame runs one update pass.
func (c *Controller) OnFrame(in FrameInput) {
	if c.modal {
		c.setState(StateSuspended)
		return
	}
	defer c.refreshState()

	if in.Status != c.status {
		c.log.Info("session status changed",
			zap.Stringer("from", c.status),
			zap.Stringer("to", in.Status))
	}
	c.status = in.Status

	if in.Status != ar.SessionTracking {
		c.surfaceTracked = false
		c.display.SetLowPower(true)
		c.ui.SetSearchingMessageVisible(true)
		c.ui.SetCreateButtonsEnabled(false)
		c.clearSelection()
		if c.cfg.AutoQuitOnSessionError && in.Status.IsError() {
			c.quitOnConnectionErrors(in.Status)
		}
		return
	}

	c.display.SetLowPower(false)
	for _, surface := range c.tracking.NewSurfaces() {
		c.log.Debug("surface detected", zap.String("surface", surface.ID))
		c.sink.InstantiateSurfaceVisual(surface)
	}

	c.surfaceTracked = false
	for _, surface := range c.tracking.AllSurfaces() {
		if surface.IsActivelyTracking() {
			c.surfaceTracked = true
			break
		}
	}
	c.ui.SetSearchingMessageVisible(!c.surfaceTracked)
	c.ui.SetCreateButtonsEnabled(c.surfaceTracked)

	hasObjects := len(c.placed) > 0
	c.ui.SetPlacementMessageVisible(hasObjects)
	if !hasObjects {
		c.clearSelection()
	}

	if pose, ok := c.tracking.RaycastSurfaces(in.screenCenter()); ok {
		c.placement = pose
		c.placementValid = true
	}

	touch := in.Touch
	if touch == nil || in.TouchCount < 1 {
		return
	}
	if rectContains(c.ui.ButtonRegion(), touch.Position) {
		return
	}

	if touch.Phase == ar.TouchBegan {
		c.selectAt(touch.Position)
	}
	if c.selectedID == "" {
		return
	}
	if touch.Phase == ar.TouchMoved {
		c.dragTo(touch.Position)
	}
}

func (c *Controller) selectAt(screen rl.Vector2) {
	ray := c.tracking.ScreenRay(screen)
	ref, _, ok := c.tracking.RaycastScene(ray, c.cfg.MaxRaycastDistance)
	if ok {
		if i := c.indexOfEntity(ref); i >= 0 {
			if c.selectedID != c.placed[i].ID {
				c.clearSelection()
				c.selectedID = c.placed[i].ID
				c.log.Debug("object selected", zap.String("id", c.selectedID), zap.Stringer("kind", c.placed[i].Kind))
				c.Changes.Invoke(Change{Kind: ChangeSelected, Object: c.placed[i]})
			}
			c.ui.SetRemoveButtonEnabled(true)
			return
		}
	}
	c.clearSelection()
}

func (c *Controller) dragTo(screen rl.Vector2) {
	i := c.indexOfID(c.selectedID)
	if i < 0 {
		return
	}
	hit, ok := c.tracking.RaycastSurfaces(screen)
	if !ok {
		return
	}
	obj := &c.placed[i]
	pose := obj.Pose.WithPosition(hit.Position)
	if c.cfg.UpdateOrientationOnDrag {
		pose.Rotation = hit.Rotation
	}
	obj.Pose = pose
	c.sink.SetObjectPose(obj.Entity, pose)
	c.Changes.Invoke(Change{Kind: ChangeMoved, Object: *obj})
}

// clearSelection drops the selection and disables the remove button.
func (c *Controller) clearSelection() {
	c.ui.SetRemoveButtonEnabled(false)
	if c.selectedID == "" {
		return
	}
	var prev PlacedObject
	if i := c.indexOfID(c.selectedID); i >= 0 {
		prev = c.placed[i]
	}
	c.selectedID = ""
	c.Changes.Invoke(Change{Kind: ChangeDeselected, Object: prev})
}

// Create places a new object of kind at the current placement point. It declines
// while the quit dialog is open or before any surface has been hit.
func (c *Controller) Create(kind Kind) (PlacedObject, bool) {
	if c.modal || !c.placementValid {
		c.log.Debug("create declined",
			zap.Stringer("kind", kind),
			zap.Bool("modal", c.modal),
			zap.Bool("placementValid", c.placementValid))
		return PlacedObject{}, false
	}

	obj := PlacedObject{
		ID:   uuid.NewString(),
		Kind: kind,
		Pose: c.placement,
	}
	obj.Entity = c.sink.InstantiateObject(kind, obj.Pose)
	c.placed = append(c.placed, obj)

	c.log.Info("object placed",
		zap.String("id", obj.ID),
		zap.Stringer("kind", kind),
		zap.Float32("x", obj.Pose.Position.X),
		zap.Float32("y", obj.Pose.Position.Y),
		zap.Float32("z", obj.Pose.Position.Z),
		zap.Float32("yaw", obj.Pose.Euler().Y))
	c.Changes.Invoke(Change{Kind: ChangePlaced, Object: obj})
	return obj, true
}

func (c *Controller) CreateTable() { c.Create(KindTable) }

func (c *Controller) CreateChair() { c.Create(KindChair) }

// Remove destroys the selected object. Without a selection it does nothing.
func (c *Controller) Remove() bool {
	if c.modal || c.selectedID == "" {
		return false
	}
	i := c.indexOfID(c.selectedID)
	if i < 0 {
		c.selectedID = ""
		c.ui.SetRemoveButtonEnabled(false)
		return false
	}

	obj := c.placed[i]
	c.placed = append(c.placed[:i], c.placed[i+1:]...)
	c.sink.DestroyObject(obj.Entity)
	c.ui.SetRemoveButtonEnabled(false)
	c.selectedID = ""
	c.refreshState()

	c.log.Info("object removed", zap.String("id", obj.ID), zap.Stringer("kind", obj.Kind))
	c.Changes.Invoke(Change{Kind: ChangeRemoved, Object: obj})
	return true
}

// Quit opens the confirmation dialog. Frames are suspended until it is resolved.
func (c *Controller) Quit() {
	c.modal = true
	c.ui.SetQuitModalVisible(true)
	c.setState(StateSuspended)
}

func (c *Controller) CancelQuit() {
	c.modal = false
	c.ui.SetQuitModalVisible(false)
	c.refreshState()
}

// ConfirmQuit closes the dialog and shuts the app down, reporting a session
// error first if there is one.
func (c *Controller) ConfirmQuit() {
	c.modal = false
	c.ui.SetQuitModalVisible(false)
	c.quitOnConnectionErrors(c.tracking.SessionStatus())
}

func (c *Controller) State() State { return c.state }

func (c *Controller) ModalOpen() bool { return c.modal }

func (c *Controller) Quitting() bool { return c.quitting }

// QuitTimer is the pending delayed exit, or nil when none was scheduled.
func (c *Controller) QuitTimer() *engine.Timer { return c.quitTimer }

// PlacementPoint returns the last surface pose under the screen centre.
func (c *Controller) PlacementPoint() (ar.Pose, bool) {
	return c.placement, c.placementValid
}

func (c *Controller) PlacedObjects() []PlacedObject {
	out := make([]PlacedObject, len(c.placed))
	copy(out, c.placed)
	return out
}

func (c *Controller) Selected() (PlacedObject, bool) {
	if i := c.indexOfID(c.selectedID); i >= 0 {
		return c.placed[i], true
	}
	return PlacedObject{}, false
}

func (c *Controller) refreshState() {
	c.setState(resolveState(stateInputs{
		modal:          c.modal,
		status:         c.status,
		surfaceTracked: c.surfaceTracked,
		placementValid: c.placementValid,
		selected:       c.selectedID != "",
	}))
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.log.Debug("state", zap.Stringer("from", c.state), zap.Stringer("to", s))
	c.state = s
}

func (c *Controller) indexOfID(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.placed {
		if c.placed[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) indexOfEntity(ref engine.GameObjectRef) int {
	if !ref.IsValid() {
		return -1
	}
	for i := range c.placed {
		if c.placed[i].Entity == ref {
			return i
		}
	}
	return -1
}

func rectContains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}
