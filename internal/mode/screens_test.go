package mode

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
)

func TestDrawDifficulty(t *testing.T) {
	g := core.NewGroup()
	drawDifficulty(g, 2)

	want := []string{"Select Difficulty", "Rotate + press", "  Easy", "  Medium", "> Hard"}
	if got := g.Texts(); !slices.Equal(got, want) {
		t.Errorf("texts = %q, expected %q", got, want)
	}
	els := g.Elements()
	if els[2].Y != 38 || els[4].Y != 58 {
		t.Errorf("items at y=%d..%d, expected 38..58", els[2].Y, els[4].Y)
	}
}

func TestDrawLevelSelectWindow(t *testing.T) {
	tests := []struct {
		selected int
		first    string
		last     string
	}{
		{0, "> Level 1", "  Level 4"},
		{1, "  Level 1", "  Level 4"},
		{5, "  Level 5", "  Level 8"},
		{9, "  Level 7", "> Level 10"},
	}

	for _, tc := range tests {
		g := core.NewGroup()
		drawLevelSelect(g, config.Medium, tc.selected)
		texts := g.Texts()
		if texts[1] != "Medium" {
			t.Errorf("subtitle = %q", texts[1])
		}
		items := texts[2:]
		if len(items) != levelWindow {
			t.Fatalf("selected %d: %d rows, expected %d", tc.selected, len(items), levelWindow)
		}
		if items[0] != tc.first || items[len(items)-1] != tc.last {
			t.Errorf("selected %d: rows %q", tc.selected, items)
		}
		if !slices.ContainsFunc(items, func(s string) bool { return strings.HasPrefix(s, "> ") }) {
			t.Errorf("selected %d: cursor not visible in %q", tc.selected, items)
		}
	}
}

func TestDrawGameOverColumns(t *testing.T) {
	g := core.NewGroup()
	drawGameOver(g, GameOver{
		Selected: GameOverMainMenu,
		Score:    42,
		HighScores: []highscore.Entry{
			{Name: "AAA", Score: 50}, {Name: "BBB", Score: 42}, {Name: "C", Score: 30},
			{Name: "DD", Score: 20}, {Name: "EEE", Score: 10},
		},
	})

	texts := g.Texts()
	if texts[1] != "Score 42" {
		t.Errorf("score line = %q", texts[1])
	}
	if texts[4] != "3 C   30" {
		t.Errorf("third entry = %q", texts[4])
	}
	els := g.Elements()
	if els[5].X != scoreColumn2X || els[5].Y != scoreRowsY {
		t.Errorf("fourth entry at (%d,%d), expected second column top", els[5].X, els[5].Y)
	}
	if texts[len(texts)-1] != "> Main Menu" {
		t.Errorf("cursor line = %q", texts[len(texts)-1])
	}
}

func TestDrawGameOverEmpty(t *testing.T) {
	g := core.NewGroup()
	drawGameOver(g, GameOver{})
	if !slices.Contains(g.Texts(), "no scores yet") {
		t.Errorf("texts = %q", g.Texts())
	}
}

func TestDrawSplash(t *testing.T) {
	g := core.NewGroup()
	g.AddText(0, 0, "old")
	drawSplash(g)
	if got := g.Texts(); got[0] != "TILT DODGE" || len(got) != 2 {
		t.Errorf("texts = %q", got)
	}
}
