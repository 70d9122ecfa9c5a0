package mode

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/engine"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
	"github.com/vovakirdan/tiltdodge/internal/input"
)

// LevelResolver turns a difficulty and level into a level configuration.
type LevelResolver interface {
	Resolve(d config.Difficulty, level int) config.LevelConfig
}

// ScoreRecorder stores a finished run and returns the top entries for its
// difficulty and level.
type ScoreRecorder interface {
	Record(d config.Difficulty, level int, name string, score int) []highscore.Entry
}

// StatusLight is the RGB status LED.
type StatusLight interface {
	SetColor(c core.Color)
}

// PowerSwitch powers the board down.
type PowerSwitch interface {
	Shutdown()
}

// Vector is one accelerometer sample in m/s².
type Vector struct {
	X, Y, Z float64
}

// Axis selects the accelerometer component used for tilt.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis parses "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y", "":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return AxisY, fmt.Errorf("mode: unknown tilt axis %q", s)
}

// Component returns the reading on axis a.
func (v Vector) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisZ:
		return v.Z
	default:
		return v.Y
	}
}

// Deps are the collaborators of a Machine. Levels, Scores, Surface, Light
// and Power are required.
type Deps struct {
	Levels        LevelResolver
	Scores        ScoreRecorder
	Surface       core.Surface
	Light         StatusLight
	Power         PowerSwitch
	Logger        *log.Logger
	SplashSeconds float64 // 0 skips the splash
	Blink         BlinkConfig
	TiltAxis      Axis
}

// Machine is the mode state machine. It is driven by Step from a single
// polling loop and is not safe for concurrent use.
type Machine struct {
	deps      Deps
	rt        core.RuntimeConfig
	logger    *log.Logger
	indicator *Indicator

	mode   Mode
	dirty  bool
	halted bool
	color  core.Color
	lit    bool

	difficulty config.Difficulty
	level      int
	levelCfg   config.LevelConfig
	name       string
	runs       int64
}

// New creates a machine. Call Start before the first Step.
func New(deps Deps, rt core.RuntimeConfig) *Machine {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		deps:       deps,
		rt:         rt,
		logger:     logger,
		indicator:  NewIndicator(deps.Blink),
		mode:       MainMenu{},
		difficulty: config.Easy,
		level:      config.MinLevel,
	}
}

// Start enters the splash screen, or the main menu when the splash is
// disabled, and draws it.
func (m *Machine) Start(now float64) {
	if m.deps.SplashSeconds > 0 {
		m.setMode(Splash{Until: now + m.deps.SplashSeconds})
	} else {
		m.setMode(MainMenu{})
	}
	m.render()
	m.updateLight(now)
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Halted reports whether the machine has powered off.
func (m *Machine) Halted() bool {
	return m.halted
}

// Difficulty returns the last chosen difficulty.
func (m *Machine) Difficulty() config.Difficulty {
	return m.difficulty
}

// Level returns the last chosen level.
func (m *Machine) Level() int {
	return m.level
}

// PlayerName returns the name used for the current or last run.
func (m *Machine) PlayerName() string {
	return m.name
}

// LevelConfig returns the configuration of the current or last run.
func (m *Machine) LevelConfig() config.LevelConfig {
	return m.levelCfg
}

// Step processes one polling iteration: at most one transition, then at
// most one engine tick, then rendering, then the status LED.
func (m *Machine) Step(ev input.Events, accel Vector, now float64) {
	if m.Halted() {
		return
	}

	_, wasPlaying := m.mode.(Playing)
	m.dispatch(ev, now)

	if p, ok := m.mode.(Playing); ok && wasPlaying {
		m.tick(p, accel, now)
	}

	if _, playing := m.mode.(Playing); playing || m.dirty {
		m.render()
	}
	m.updateLight(now)
}

func pressed(ev input.Events) bool {
	return ev.MainPressed || ev.ConfirmPressed
}

func (m *Machine) dispatch(ev input.Events, now float64) {
	switch cur := m.mode.(type) {
	case Splash:
		if ev.AnyPressed() || now >= cur.Until {
			m.setMode(MainMenu{})
		}

	case MainMenu:
		if ev.EncoderDelta != 0 {
			cur.Selected = core.Wrap(cur.Selected+ev.EncoderDelta, len(MainMenuOptions))
			m.setMode(cur)
			return
		}
		if !pressed(ev) {
			return
		}
		switch cur.Selected {
		case MainMenuStart:
			m.setMode(DifficultySelect{Selected: int(m.difficulty)})
		case MainMenuExit:
			m.powerOff()
		}

	case DifficultySelect:
		if ev.EncoderDelta != 0 {
			cur.Selected = core.Wrap(cur.Selected+ev.EncoderDelta, len(config.Difficulties))
			m.setMode(cur)
			return
		}
		if pressed(ev) {
			m.difficulty = config.Difficulties[cur.Selected]
			m.setMode(LevelSelect{})
		}

	case LevelSelect:
		if ev.EncoderDelta != 0 {
			cur.Selected = core.Wrap(cur.Selected+ev.EncoderDelta, config.LevelCount)
			m.setMode(cur)
			return
		}
		if pressed(ev) {
			m.level = cur.Level()
			m.levelCfg = m.deps.Levels.Resolve(m.difficulty, m.level)
			m.logger.Info("level selected", "difficulty", m.difficulty, "level", m.level, "config", m.levelCfg.Name)
			m.setMode(NameEntry{})
		}

	case NameEntry:
		if ev.ConfirmPressed {
			m.name = cur.Name
			m.startRun()
			return
		}
		step := ev.EncoderDelta
		if ev.LeftPressed {
			step--
		}
		if ev.RightPressed {
			step++
		}
		changed := false
		if step != 0 {
			cur.Letter = core.Wrap(cur.Letter+step, len(Alphabet))
			changed = true
		}
		if ev.MainPressed && len(cur.Name) < highscore.MaxNameLength {
			cur.Name += string(cur.CurrentLetter())
			cur.Letter = 0
			changed = true
		}
		if changed {
			m.setMode(cur)
		}

	case Playing:
		e := cur.Engine
		if ev.LeftHeld {
			e.MoveHorizontal(-1)
		}
		if ev.RightHeld {
			e.MoveHorizontal(1)
		}
		if ev.EncoderDelta != 0 {
			e.MoveHorizontal(ev.EncoderDelta)
		}
		if ev.MainPressed {
			e.FireBullet()
		}

	case GameOver:
		if ev.EncoderDelta != 0 {
			cur.Selected = core.Wrap(cur.Selected+ev.EncoderDelta, len(GameOverOptions))
			m.setMode(cur)
			return
		}
		if !pressed(ev) {
			return
		}
		switch cur.Selected {
		case GameOverRestart:
			m.startRun()
		case GameOverMainMenu:
			m.setMode(MainMenu{})
		}

	case PoweredOff:

	default:
		panic(unknownMode(cur))
	}
}

func (m *Machine) startRun() {
	rt := m.rt
	rt.Seed += m.runs
	m.runs++
	m.setMode(Playing{Engine: engine.New(m.levelCfg, rt)})
}

func (m *Machine) tick(p Playing, accel Vector, now float64) {
	p.Engine.Tick(accel.Component(m.deps.TiltAxis), now)
	if !p.Engine.IsGameOver() {
		return
	}

	score := p.Engine.Score()
	top := m.deps.Scores.Record(m.difficulty, m.level, m.name, score)
	m.logger.Info("run finished",
		"difficulty", m.difficulty,
		"level", m.level,
		"name", highscore.NormalizeName(m.name),
		"score", score,
		"frames", p.Engine.Frame(),
	)
	m.indicator.Trigger(now)
	m.setMode(GameOver{Score: score, HighScores: top})
}

func (m *Machine) powerOff() {
	m.logger.Info("powering off")
	m.setMode(PoweredOff{})
	m.halted = true
	m.deps.Surface.Clear()
	m.dirty = false
	m.deps.Power.Shutdown()
}

func (m *Machine) setMode(next Mode) {
	if prev := m.mode; prev.Kind() != next.Kind() {
		m.logger.Debug("mode change", "from", prev.Kind(), "to", next.Kind())
	}
	m.mode = next
	m.dirty = true
}

func (m *Machine) render() {
	m.dirty = false
	s := m.deps.Surface

	switch cur := m.mode.(type) {
	case Splash:
		drawSplash(s)
	case MainMenu:
		drawMainMenu(s, cur.Selected)
	case DifficultySelect:
		drawDifficulty(s, cur.Selected)
	case LevelSelect:
		drawLevelSelect(s, m.difficulty, cur.Selected)
	case NameEntry:
		drawNameEntry(s, cur)
	case Playing:
		cur.Engine.Render(s)
	case GameOver:
		drawGameOver(s, cur)
	case PoweredOff:
		s.Clear()
	default:
		panic(unknownMode(cur))
	}
}

func (m *Machine) updateLight(now float64) {
	c := m.indicator.Color(now, SteadyColor(m.mode))
	if m.lit && c == m.color {
		return
	}
	m.deps.Light.SetColor(c)
	m.color = c
	m.lit = true
}

func unknownMode(m Mode) string {
	return fmt.Sprintf("mode: unknown mode %T", m)
}
