package mode

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
)

// Screen layout in display pixels. Text y is the label's anchor row.
const (
	menuX         = 10
	levelWindow   = 4
	levelListY    = 28
	levelSpacing  = 9
	scoreRowsY    = 22
	scoreRowStep  = 8
	scoreColumn2X = 68
)

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func drawSplash(s core.Surface) {
	s.Clear()
	s.AddText(34, 20, "TILT DODGE")
	s.AddText(10, 44, "press any button")
}

func drawMainMenu(s core.Surface, selected int) {
	s.Clear()
	s.AddText(28, 10, "Welcome!")
	s.AddText(16, 22, "Rotate + press")

	yPositions := []int{40, 52}
	for i, option := range MainMenuOptions {
		s.AddText(menuX, yPositions[i], cursor(i == selected)+option)
	}
}

func drawDifficulty(s core.Surface, selected int) {
	s.Clear()
	s.AddText(4, 10, "Select Difficulty")
	s.AddText(16, 22, "Rotate + press")

	for i, d := range config.Difficulties {
		s.AddText(menuX, 38+i*10, cursor(i == selected)+d.String())
	}
}

// levelWindowStart keeps the selected level visible in a window of
// levelWindow rows.
func levelWindowStart(selected int) int {
	return core.Clamp(selected-1, 0, config.LevelCount-levelWindow)
}

func drawLevelSelect(s core.Surface, d config.Difficulty, selected int) {
	s.Clear()
	s.AddText(4, 6, "Select Level")
	s.AddText(4, 16, d.String())

	start := levelWindowStart(selected)
	for row := 0; row < levelWindow; row++ {
		i := start + row
		if i >= config.LevelCount {
			break
		}
		label := fmt.Sprintf("%sLevel %d", cursor(i == selected), i+config.MinLevel)
		s.AddText(menuX, levelListY+row*levelSpacing, label)
	}
}

func drawNameEntry(s core.Surface, n NameEntry) {
	s.Clear()
	s.AddText(28, 6, "Enter Name")

	shown := n.Name + strings.Repeat("_", max(highscore.MaxNameLength-len(n.Name), 0))
	s.AddText(16, 20, "Name:   "+shown)
	s.AddText(16, 32, "Letter: "+string(n.CurrentLetter()))

	s.AddText(0, 46, "L/R letter  btn add")
	s.AddText(0, 56, "knob btn to play")
}

func drawGameOver(s core.Surface, g GameOver) {
	s.Clear()
	s.AddText(4, 4, "Game Over")
	s.AddText(70, 4, fmt.Sprintf("Score %d", g.Score))

	for i, e := range g.HighScores {
		x := 4
		row := i
		if i >= 3 {
			x = scoreColumn2X
			row = i - 3
		}
		s.AddText(x, scoreRowsY+row*scoreRowStep, fmt.Sprintf("%d %-3s %d", i+1, e.Name, e.Score))
	}
	if len(g.HighScores) == 0 {
		s.AddText(4, scoreRowsY, "no scores yet")
	}

	s.AddText(0, 54, cursor(g.Selected == GameOverRestart)+GameOverOptions[GameOverRestart])
	s.AddText(60, 54, cursor(g.Selected == GameOverMainMenu)+GameOverOptions[GameOverMainMenu])
}
