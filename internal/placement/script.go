package placement

import (
	"arplace/internal/engine"

	"go.uber.org/zap"
)

// ScriptName is the name the placement script registers under.
const ScriptName = "ARPlacement"

// Host is what the placement script needs from the world it runs in. The script
// looks it up on Scene.World when it starts.
type Host interface {
	Tracking() TrackingProvider
	Sink() SceneSink
	UI() UISurface
	Notifier() Notifier
	Display() Display
	App() Application
	FrameInput() FrameInput
	Logger() *zap.Logger
}

// Script runs a Controller as an engine component: Start builds it from the host,
// Update feeds it one FrameInput per frame.
type Script struct {
	engine.BaseComponent
	Config Config

	// Ready fires once the controller exists, so the host can bind buttons to it.
	Ready engine.EventWithArg[*Controller]

	host       Host
	controller *Controller
}

func NewScript(cfg Config) *Script {
	return &Script{Config: cfg}
}

func (s *Script) Start() {
	g := s.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}
	host, ok := g.Scene.World.(Host)
	if !ok {
		return
	}
	log := host.Logger()
	if log == nil {
		log = zap.NewNop()
	}

	c, err := NewController(s.Config, Deps{
		Tracking:  host.Tracking(),
		Sink:      host.Sink(),
		UI:        host.UI(),
		Notifier:  host.Notifier(),
		Display:   host.Display(),
		App:       host.App(),
		Scheduler: g.Scene.Timers,
		Logger:    log.Named("placement"),
	})
	if err != nil {
		log.Error("placement script disabled", zap.Error(err))
		return
	}
	s.host = host
	s.controller = c
	s.Ready.Invoke(c)
}

func (s *Script) Update(deltaTime float32) {
	if s.controller == nil {
		return
	}
	s.controller.OnFrame(s.host.FrameInput())
}

// Controller returns the running controller, nil before Start.
func (s *Script) Controller() *Controller {
	return s.controller
}

func init() {
	engine.RegisterScript(ScriptName, scriptFactory, scriptSerializer)
}

func scriptFactory(props map[string]any) engine.Component {
	return NewScript(ConfigFromProps(props))
}

func scriptSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Script)
	if !ok {
		return nil
	}
	return s.Config.Props()
}
