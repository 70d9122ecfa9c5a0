package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/device.yaml
var defaultDeviceYAML []byte

// Storage backends for the high-score table.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// DeviceConfig describes the board and where persistent data lives.
type DeviceConfig struct {
	Display DisplayConfig `yaml:"display"`
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
	Status  StatusConfig  `yaml:"status"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig is the panel size in pixels.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig controls the polling loop.
type LoopConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Sleep between iterations
	SplashMS   int `yaml:"splash_ms"`   // 0 disables the boot splash
}

// InputConfig selects which accelerometer axis drives tilt.
type InputConfig struct {
	TiltAxis string `yaml:"tilt_axis"` // "x", "y" or "z"
}

// StatusConfig tunes the game-over LED blink.
type StatusConfig struct {
	BlinkToggles    int `yaml:"blink_toggles"`
	BlinkIntervalMS int `yaml:"blink_interval_ms"`
}

// StorageConfig locates scores and level overrides.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // "sqlite" or "file"
	Path      string `yaml:"path"`
	LevelsDir string `yaml:"levels_dir"`
}

// DefaultScorePath returns the score location used when none is configured.
func DefaultScorePath(backend string) string {
	if backend == BackendFile {
		return "~/.tiltdodge/highscores.json"
	}
	return "~/.tiltdodge/scores.db"
}

// DefaultDeviceConfig returns the reference board configuration.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		Display: DisplayConfig{
			Width:  128,
			Height: 64,
		},
		Loop: LoopConfig{
			IntervalMS: 10,
			SplashMS:   1500,
		},
		Input: InputConfig{
			TiltAxis: "y",
		},
		Status: StatusConfig{
			BlinkToggles:    6,
			BlinkIntervalMS: 100,
		},
		Storage: StorageConfig{
			Backend:   BackendSQLite,
			Path:      DefaultScorePath(BackendSQLite),
			LevelsDir: "~/.tiltdodge/levels",
		},
	}
}

// withDefaults fills zero or unknown values left by a partial YAML file.
func (c DeviceConfig) withDefaults() DeviceConfig {
	def := DefaultDeviceConfig()
	if c.Display.Width <= 0 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = def.Display.Height
	}
	if c.Loop.IntervalMS <= 0 {
		c.Loop.IntervalMS = def.Loop.IntervalMS
	}
	if c.Loop.SplashMS < 0 {
		c.Loop.SplashMS = 0
	}
	switch c.Input.TiltAxis {
	case "x", "y", "z":
	default:
		c.Input.TiltAxis = def.Input.TiltAxis
	}
	if c.Status.BlinkToggles < 0 {
		c.Status.BlinkToggles = 0
	}
	if c.Status.BlinkIntervalMS <= 0 {
		c.Status.BlinkIntervalMS = def.Status.BlinkIntervalMS
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Path == "" || (c.Storage.Backend == BackendFile && c.Storage.Path == def.Storage.Path) {
		c.Storage.Path = DefaultScorePath(c.Storage.Backend)
	}
	return c
}

// LoopInterval returns the polling sleep.
func (c DeviceConfig) LoopInterval() time.Duration {
	return time.Duration(c.Loop.IntervalMS) * time.Millisecond
}

// SplashSeconds returns the splash duration in seconds.
func (c DeviceConfig) SplashSeconds() float64 {
	return float64(c.Loop.SplashMS) / 1000
}

// BlinkIntervalSeconds returns the blink half-period in seconds.
func (c DeviceConfig) BlinkIntervalSeconds() float64 {
	return float64(c.Status.BlinkIntervalMS) / 1000
}
