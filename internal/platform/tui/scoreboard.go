package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
	"github.com/vovakirdan/tiltdodge/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 60 // Minimum width to show the difficulty sidebar
	sidebarWidth       = 14 // Width of difficulty sidebar
)

// TableSource loads the high-score table.
type TableSource interface {
	Load() highscore.Table
}

// StatsSource reports run statistics. storage.Store implements it.
type StatsSource interface {
	Stats(key string) (*storage.KeyStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	NextDiff  key.Binding
	PrevDiff  key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextLevel, k.PrevLevel, k.NextDiff, k.PrevDiff, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.NextDiff, k.PrevDiff, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		NextDiff: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevDiff: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing high scores by
// difficulty and level.
type ScoreboardModel struct {
	source      TableSource
	stats       StatsSource // nil when the backend keeps no run log
	scores      highscore.Table
	difficulty  int // Index into config.Difficulties
	level       int // One-based
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model. stats may be nil.
func NewScoreboardModel(source TableSource, stats StatsSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:      source,
		stats:       stats,
		level:       config.MinLevel,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// Key returns the score key currently shown.
func (m ScoreboardModel) Key() string {
	return config.Key(config.Difficulties[m.difficulty], m.level)
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 8},
		{Title: "Score", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(highscore.MaxEntries+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload reads the table from the source and refreshes the rows.
func (m *ScoreboardModel) reload() {
	if m.source == nil {
		m.scores = highscore.Table{}
	} else {
		m.scores = m.source.Load()
	}
	m.updateTableRows()
}

// updateTableRows shows the entries for the current key.
func (m *ScoreboardModel) updateTableRows() {
	entries := m.scores.Top(m.Key())
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			m.level = m.level%config.LevelCount + 1
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.level--
			if m.level < config.MinLevel {
				m.level = config.MaxLevel
			}
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.NextDiff):
			m.difficulty = (m.difficulty + 1) % len(config.Difficulties)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevDiff):
			m.difficulty = (m.difficulty + len(config.Difficulties) - 1) % len(config.Difficulties)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s level %d", config.Difficulties[m.difficulty], m.level)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(line))
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the difficulties with the current one highlighted.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Difficulty\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, d := range config.Difficulties {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.difficulty {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + d.String()))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores.Top(m.Key())) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No scores recorded yet.")
	}
	return m.table.View()
}

// statsLine summarizes the run log for the current key.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	st, err := m.stats.Stats(m.Key())
	if err != nil || st.RunsCount == 0 {
		return ""
	}
	return fmt.Sprintf("runs %d  best %d  avg %.1f  last %s",
		st.RunsCount, st.BestScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source TableSource, stats StatsSource, width, height int) error {
	model := NewScoreboardModel(source, stats, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
