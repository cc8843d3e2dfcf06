package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Placement PlacementConfig `mapstructure:"placement"`
	Room      RoomConfig      `mapstructure:"room"`
	Log       LogConfig       `mapstructure:"log"`
	Audio     AudioConfig     `mapstructure:"audio"`
}

type WindowConfig struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Title       string `mapstructure:"title"`
	TargetFPS   int    `mapstructure:"target_fps"`
	LowPowerFPS int    `mapstructure:"low_power_fps"`
}

type PlacementConfig struct {
	UpdateOrientationOnDrag bool    `mapstructure:"update_orientation_on_drag"`
	QuitDelay               float32 `mapstructure:"quit_delay"`
	MaxRaycastDistance      float32 `mapstructure:"max_raycast_distance"`
	AutoQuitOnSessionError  bool    `mapstructure:"auto_quit_on_session_error"`
}

// RoomConfig points at the simulated room the desktop session tracks.
type RoomConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty disables the file sink
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "AR Furniture Placement")
	v.SetDefault("window.target_fps", 60)
	v.SetDefault("window.low_power_fps", 15)

	v.SetDefault("placement.update_orientation_on_drag", false)
	v.SetDefault("placement.quit_delay", 0.5)
	v.SetDefault("placement.max_raycast_distance", 100)
	v.SetDefault("placement.auto_quit_on_session_error", false)

	v.SetDefault("room.path", "assets/rooms/living_room.json")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "arplace.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)
}

// Load reads configuration from file and env. The file is ARPLACE_CONFIG when set,
// otherwise an optional ./arplace.yaml. Env var overrides use prefix ARPLACE_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("ARPLACE_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("arplace")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ARPLACE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration without reading files or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// defaults always decode
	_ = v.Unmarshal(&c)
	return c
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS <= 0 || c.Window.LowPowerFPS <= 0:
		return fmt.Errorf("%w: fps %d/%d", ErrInvalid, c.Window.TargetFPS, c.Window.LowPowerFPS)
	case c.Placement.QuitDelay <= 0:
		return fmt.Errorf("%w: placement.quit_delay %v", ErrInvalid, c.Placement.QuitDelay)
	case c.Placement.MaxRaycastDistance <= 0:
		return fmt.Errorf("%w: placement.max_raycast_distance %v", ErrInvalid, c.Placement.MaxRaycastDistance)
	case !logLevels[strings.ToLower(c.Log.Level)]:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %v", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
