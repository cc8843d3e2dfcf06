package placement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFromProps(t *testing.T) {
	cfg := ConfigFromProps(map[string]any{
		"updateOrientationOnDrag": true,
		"quitDelay":               1.5, // float64, as decoded from JSON
		"maxRaycastDistance":      20,
		"autoQuitOnSessionError":  true,
	})
	require.Equal(t, Config{
		UpdateOrientationOnDrag: true,
		QuitDelay:               1.5,
		MaxRaycastDistance:      20,
		AutoQuitOnSessionError:  true,
	}, cfg)

	require.Equal(t, cfg, ConfigFromProps(cfg.Props()))
}

func TestConfigFromPropsDefaults(t *testing.T) {
	require.Equal(t, DefaultConfig(), ConfigFromProps(nil))
	require.Equal(t, DefaultConfig(), ConfigFromProps(map[string]any{
		"quitDelay":          -1,
		"maxRaycastDistance": "far",
	}))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Chair")
	require.NoError(t, err)
	require.Equal(t, KindChair, k)

	_, err = ParseKind("sofa")
	require.Error(t, err)
}
