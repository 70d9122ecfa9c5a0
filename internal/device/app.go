// Package device wires the core to board collaborators and runs the
// cooperative polling loop.
package device

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/input"
	"github.com/vovakirdan/tiltdodge/internal/mode"
)

// Buttons reports raw active-low button levels: true = released.
type Buttons interface {
	Main() bool
	Left() bool
	Right() bool
	Confirm() bool
}

// Encoder reports the rotary encoder position counter.
type Encoder interface {
	Position() int
}

// Accelerometer reports acceleration in m/s².
type Accelerometer interface {
	Acceleration() (x, y, z float64)
}

// Clock reports monotonic time in seconds.
type Clock interface {
	Now() float64
}

// Hardware bundles the board collaborators.
type Hardware struct {
	Buttons Buttons
	Encoder Encoder
	Accel   Accelerometer
	Clock   Clock
	Surface core.Surface
	Light   mode.StatusLight
	Power   mode.PowerSwitch
}

// ErrMissingHardware is returned by New when a collaborator is nil.
var ErrMissingHardware = errors.New("device: missing hardware collaborator")

func (hw Hardware) validate() error {
	switch {
	case hw.Buttons == nil:
		return fmt.Errorf("%w: buttons", ErrMissingHardware)
	case hw.Encoder == nil:
		return fmt.Errorf("%w: encoder", ErrMissingHardware)
	case hw.Accel == nil:
		return fmt.Errorf("%w: accelerometer", ErrMissingHardware)
	case hw.Clock == nil:
		return fmt.Errorf("%w: clock", ErrMissingHardware)
	case hw.Surface == nil:
		return fmt.Errorf("%w: surface", ErrMissingHardware)
	case hw.Light == nil:
		return fmt.Errorf("%w: status light", ErrMissingHardware)
	case hw.Power == nil:
		return fmt.Errorf("%w: power switch", ErrMissingHardware)
	}
	return nil
}

// App is the running application. There is exactly one per board.
type App struct {
	hw       Hardware
	tracker  *input.Tracker
	machine  *mode.Machine
	interval time.Duration
	logger   *log.Logger
}

// New builds the application, primes the input tracker from the current
// pin levels and shows the first screen.
func New(hw Hardware, levels mode.LevelResolver, scores mode.ScoreRecorder, cfg config.DeviceConfig, seed int64, logger *log.Logger) (*App, error) {
	if err := hw.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	axis, err := mode.ParseAxis(cfg.Input.TiltAxis)
	if err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}

	rt := core.DefaultConfig()
	if cfg.Display.Width > 0 && cfg.Display.Height > 0 {
		rt.ScreenW, rt.ScreenH = cfg.Display.Width, cfg.Display.Height
	}
	rt.Seed = seed

	machine := mode.New(mode.Deps{
		Levels:        levels,
		Scores:        scores,
		Surface:       hw.Surface,
		Light:         hw.Light,
		Power:         hw.Power,
		Logger:        logger,
		SplashSeconds: cfg.SplashSeconds(),
		Blink: mode.BlinkConfig{
			Toggles:  cfg.Status.BlinkToggles,
			Interval: cfg.BlinkIntervalSeconds(),
		},
		TiltAxis: axis,
	}, rt)

	app := &App{
		hw:       hw,
		machine:  machine,
		interval: cfg.LoopInterval(),
		logger:   logger,
	}
	app.tracker = input.NewTracker(app.sample())
	machine.Start(hw.Clock.Now())

	logger.Debug("device ready", "width", rt.ScreenW, "height", rt.ScreenH, "tilt_axis", cfg.Input.TiltAxis)
	return app, nil
}

func (a *App) sample() input.Sample {
	return input.Sample{
		Main:    a.hw.Buttons.Main(),
		Left:    a.hw.Buttons.Left(),
		Right:   a.hw.Buttons.Right(),
		Confirm: a.hw.Buttons.Confirm(),
		Encoder: a.hw.Encoder.Position(),
	}
}

// Machine returns the mode machine.
func (a *App) Machine() *mode.Machine {
	return a.machine
}

// Halted reports whether the board has powered off.
func (a *App) Halted() bool {
	return a.machine.Halted()
}

// Step runs one loop iteration: sample every input once, derive edges,
// then hand them to the machine.
func (a *App) Step() {
	if a.machine.Halted() {
		return
	}
	now := a.hw.Clock.Now()
	ev := a.tracker.Update(a.sample())
	x, y, z := a.hw.Accel.Acceleration()
	a.machine.Step(ev, mode.Vector{X: x, Y: y, Z: z}, now)
}

// Run steps and sleeps until the machine powers off.
func (a *App) Run() {
	for !a.machine.Halted() {
		a.Step()
		time.Sleep(a.interval)
	}
	a.logger.Debug("loop stopped")
}

// MonotonicClock measures seconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns elapsed seconds.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
