// Package tui provides the Bubble Tea host simulator and the scoreboard.
// The simulator drives the same device loop as the board, with the
// terminal standing in for the buttons, encoder, accelerometer and LED.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/device"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
	"github.com/vovakirdan/tiltdodge/internal/mode"
)

// TickMsg drives one device loop iteration.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the Bubble Tea model for the simulator.
type Model struct {
	app      *device.App
	board    *Board
	group    *core.Group
	frame    *core.Frame
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	interval time.Duration
	start    time.Time
	quitting bool
}

// NewModel creates a simulator model. The app must have been built from
// board.Hardware(group).
func NewModel(app *device.App, board *Board, group *core.Group, width, height int, interval time.Duration) Model {
	frame := core.NewFrame(width, height)
	return Model{
		app:      app,
		board:    board,
		group:    group,
		frame:    frame,
		screen:   core.ScreenForFrame(frame),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: interval,
		start:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key onto the board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.EncoderUp):
		m.board.Rotate(1)
	case key.Matches(msg, m.keys.EncoderDown):
		m.board.Rotate(-1)
	case key.Matches(msg, m.keys.Main):
		m.board.Press(ButtonMain)
	case key.Matches(msg, m.keys.Confirm):
		m.board.Press(ButtonConfirm)
	case key.Matches(msg, m.keys.Left):
		m.board.Press(ButtonLeft)
	case key.Matches(msg, m.keys.Right):
		m.board.Press(ButtonRight)
	case key.Matches(msg, m.keys.TiltForward):
		m.board.Tilt(-1)
	case key.Matches(msg, m.keys.TiltBack):
		m.board.Tilt(1)
	}
	return m, nil
}

// handleTick runs one device loop iteration.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.board.Advance(t.Sub(m.start).Seconds())
	m.app.Step()

	if m.app.Halted() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// status describes the current mode for the line under the display.
func (m Model) status() string {
	mc := m.app.Machine()
	switch cur := mc.Mode().(type) {
	case mode.Playing:
		st := cur.Engine.State()
		return fmt.Sprintf("%s  %s %02d  score %d  dodged %d  bullets %d",
			highscore.NormalizeName(mc.PlayerName()), mc.Difficulty(), mc.Level(), st.Score, cur.Engine.Dodges(), st.Bullets)
	case mode.GameOver:
		return fmt.Sprintf("%s %02d  final score %d", mc.Difficulty(), mc.Level(), cur.Score)
	default:
		return strings.ReplaceAll(cur.Kind(), "_", " ")
	}
}

// saveScreenshot saves the current display to a text file.
func (m *Model) saveScreenshot() {
	m.screen.DrawGroup(m.group, m.frame)

	dir := filepath.Join(os.Getenv("HOME"), ".tiltdodge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("display_%s.txt", time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, simulator continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the display, LED and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.DrawGroup(m.group, m.frame)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(RenderStatusLine(m.board.LED(), m.status()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the simulator and blocks until the player quits or the
// device powers off.
func Run(app *device.App, board *Board, group *core.Group, width, height int, interval time.Duration) error {
	model := NewModel(app, board, group, width, height, interval)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
