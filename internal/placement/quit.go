package placement

import (
	"arplace/internal/ar"

	"go.uber.org/zap"
)

const (
	PermissionDeniedMessage = "Camera permission is needed to run this application."
	ConnectionErrorMessage  = "AR tracking encountered a problem connecting. Please start the app again."
)

// quitOnConnectionErrors shuts the app down once. A session error is shown as a
// toast first and the exit is delayed by QuitDelay so the toast can render;
// otherwise the app quits immediately.
func (c *Controller) quitOnConnectionErrors(status ar.SessionStatus) {
	if c.quitting {
		return
	}
	c.quitting = true

	var message string
	switch status {
	case ar.SessionErrorPermissionDenied:
		message = PermissionDeniedMessage
	case ar.SessionErrorOther:
		message = ConnectionErrorMessage
	default:
		c.log.Info("quitting")
		c.app.Quit()
		return
	}

	c.log.Warn("quitting on session error",
		zap.Stringer("status", status),
		zap.Float32("delay", c.cfg.QuitDelay))
	c.notifier.ShowToast(message)
	c.quitTimer = c.scheduler.After(c.cfg.QuitDelay, c.app.Quit)
}
