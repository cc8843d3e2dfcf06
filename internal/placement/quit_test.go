package placement

import (
	"testing"

	"arplace/internal/ar"

	"github.com/stretchr/testify/require"
)

func TestConfirmQuitPermissionDenied(t *testing.T) {
	c, h := readyController(t, DefaultConfig())
	h.tracking.status = ar.SessionErrorPermissionDenied

	c.Quit()
	c.ConfirmQuit()

	require.False(t, h.ui.quitModal)
	require.Equal(t, []string{PermissionDeniedMessage}, h.notifier.toasts)
	require.Zero(t, h.app.quits, "exit waits for the toast")
	require.NotNil(t, c.QuitTimer())

	h.scheduler.Tick(0.25)
	require.Zero(t, h.app.quits)

	c.ConfirmQuit()
	require.Len(t, h.notifier.toasts, 1, "a second confirm is ignored")

	h.scheduler.Tick(0.25)
	require.Equal(t, 1, h.app.quits)
	require.True(t, c.QuitTimer().Fired())

	h.scheduler.Tick(1)
	require.Equal(t, 1, h.app.quits)
}

func TestConfirmQuitOtherError(t *testing.T) {
	c, h := readyController(t, DefaultConfig())
	h.tracking.status = ar.SessionErrorOther

	c.ConfirmQuit()
	h.scheduler.Tick(0.5)

	require.Equal(t, []string{ConnectionErrorMessage}, h.notifier.toasts)
	require.Equal(t, 1, h.app.quits)
}

func TestConfirmQuitWithoutErrorQuitsImmediately(t *testing.T) {
	for _, status := range []ar.SessionStatus{ar.SessionTracking, ar.SessionNotTracking, ar.SessionInvalid} {
		t.Run(status.String(), func(t *testing.T) {
			c, h := readyController(t, DefaultConfig())
			h.tracking.status = status

			c.Quit()
			c.ConfirmQuit()

			require.Equal(t, 1, h.app.quits)
			require.Empty(t, h.notifier.toasts)
			require.Nil(t, c.QuitTimer())
			require.True(t, c.Quitting())
		})
	}
}

func TestQuitDelayFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuitDelay = 2
	c, h := readyController(t, cfg)
	h.tracking.status = ar.SessionErrorOther

	c.ConfirmQuit()
	h.scheduler.Tick(1.5)
	require.Zero(t, h.app.quits)
	h.scheduler.Tick(0.5)
	require.Equal(t, 1, h.app.quits)
}

func TestAutoQuitOnSessionError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoQuitOnSessionError = true
	c, h := readyController(t, cfg)

	c.OnFrame(frame(ar.SessionNotTracking, nil))
	require.False(t, c.Quitting())

	c.OnFrame(frame(ar.SessionErrorPermissionDenied, nil))
	c.OnFrame(frame(ar.SessionErrorPermissionDenied, nil))
	require.Equal(t, []string{PermissionDeniedMessage}, h.notifier.toasts)

	h.scheduler.Tick(0.5)
	require.Equal(t, 1, h.app.quits)
}

func TestSessionErrorWithoutAutoQuitWaitsForUser(t *testing.T) {
	c, h := readyController(t, DefaultConfig())

	c.OnFrame(frame(ar.SessionErrorOther, nil))
	h.scheduler.Tick(1)

	require.False(t, c.Quitting())
	require.Empty(t, h.notifier.toasts)
	require.Zero(t, h.app.quits)
	require.Equal(t, StateSuspended, c.State())
}
