package mode

import (
	"github.com/vovakirdan/tiltdodge/internal/core"
)

// BlinkConfig describes the game over blink.
type BlinkConfig struct {
	Toggles  int     // Number of on/off phases
	Interval float64 // Seconds per phase
}

// DefaultBlink is six toggles at 0.1 s.
var DefaultBlink = BlinkConfig{Toggles: 6, Interval: 0.1}

// Indicator computes the status LED color. A triggered blink overrides the
// steady color until it has run all of its toggles.
type Indicator struct {
	cfg    BlinkConfig
	start  float64
	active bool
}

// NewIndicator creates an idle indicator.
func NewIndicator(cfg BlinkConfig) *Indicator {
	if cfg.Toggles <= 0 || cfg.Interval <= 0 {
		cfg = DefaultBlink
	}
	return &Indicator{cfg: cfg}
}

// Trigger starts the blink sequence at now.
func (ind *Indicator) Trigger(now float64) {
	ind.start = now
	ind.active = true
}

// Blinking reports whether a blink sequence is running.
func (ind *Indicator) Blinking() bool {
	return ind.active
}

// Color returns the LED color at now.
func (ind *Indicator) Color(now float64, steady core.Color) core.Color {
	if !ind.active {
		return steady
	}
	phase := int((now - ind.start) / ind.cfg.Interval)
	if phase < 0 {
		phase = 0
	}
	if phase >= ind.cfg.Toggles {
		ind.active = false
		return steady
	}
	if phase%2 == 0 {
		return core.ColorRed
	}
	return core.ColorOff
}

// SteadyColor is the LED color for a mode outside of a blink.
func SteadyColor(m Mode) core.Color {
	switch m := m.(type) {
	case Splash:
		return core.ColorWhite
	case MainMenu, DifficultySelect, LevelSelect:
		return core.ColorBlue
	case NameEntry:
		return core.ColorMagenta
	case Playing:
		if m.Engine != nil && m.Engine.Bullets() == 0 {
			return core.ColorYellow
		}
		return core.ColorGreen
	case GameOver:
		return core.ColorRed
	case PoweredOff:
		return core.ColorOff
	default:
		panic(unknownMode(m))
	}
}
