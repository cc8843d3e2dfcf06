package placement

// Config tunes the controller.
type Config struct {
	// UpdateOrientationOnDrag makes a dragged object take the surface orientation
	// under the finger. Off by default: dragging only moves.
	UpdateOrientationOnDrag bool
	// QuitDelay is how long a connection-error toast stays up before the app exits.
	QuitDelay float32
	// MaxRaycastDistance bounds the scene raycast used to pick objects.
	MaxRaycastDistance float32
	// AutoQuitOnSessionError runs the connection-error check on every frame that
	// reports a session error, not only after the user confirms quitting.
	AutoQuitOnSessionError bool
}

func DefaultConfig() Config {
	return Config{
		QuitDelay:          0.5,
		MaxRaycastDistance: 100,
	}
}

// Props renders c as script props.
func (c Config) Props() map[string]any {
	return map[string]any{
		"updateOrientationOnDrag": c.UpdateOrientationOnDrag,
		"quitDelay":               c.QuitDelay,
		"maxRaycastDistance":      c.MaxRaycastDistance,
		"autoQuitOnSessionError":  c.AutoQuitOnSessionError,
	}
}

// ConfigFromProps reads script props over DefaultConfig. Numbers may arrive as
// float64 (JSON) or float32 (Props).
func ConfigFromProps(props map[string]any) Config {
	c := DefaultConfig()
	if v, ok := props["updateOrientationOnDrag"].(bool); ok {
		c.UpdateOrientationOnDrag = v
	}
	if v, ok := number(props["quitDelay"]); ok && v > 0 {
		c.QuitDelay = v
	}
	if v, ok := number(props["maxRaycastDistance"]); ok && v > 0 {
		c.MaxRaycastDistance = v
	}
	if v, ok := props["autoQuitOnSessionError"].(bool); ok {
		c.AutoQuitOnSessionError = v
	}
	return c
}

func number(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	}
	return 0, false
}
