package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiltdodge/internal/core"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	pixelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9fe8ff"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	offLEDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))
)

// ledStyle returns the swatch style for an LED color.
func ledStyle(c core.Color) lipgloss.Style {
	if c == core.ColorOff {
		return offLEDStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%06x", c.RGB())))
}

// RenderLED draws the status LED swatch and its color name.
func RenderLED(c core.Color) string {
	return ledStyle(c).Render("●") + " " + statusStyle.Render(c.String())
}

// RenderScreen draws the display inside a bordered panel.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := 0; y < s.Height(); y++ {
		rows[y] = s.Row(y)
	}
	return panelStyle.Render(pixelStyle.Render(strings.Join(rows, "\n")))
}

// RenderStatusLine draws the LED and a short status next to it.
func RenderStatusLine(c core.Color, status string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, RenderLED(c), "   ", statusStyle.Render(status))
}
