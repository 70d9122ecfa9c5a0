// Package mode implements the top-level mode state machine: boot splash,
// menus, name entry, gameplay and game over. It owns the engine while a run
// is in progress and drives the display and status LED through collaborator
// interfaces.
package mode

import (
	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/engine"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
)

// Menu option labels
var (
	MainMenuOptions = []string{"Start Game", "Exit"}
	GameOverOptions = []string{"Restart", "Main Menu"}
)

// Alphabet is the set of letters offered in name entry.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Menu indices
const (
	MainMenuStart = 0
	MainMenuExit  = 1

	GameOverRestart  = 0
	GameOverMainMenu = 1
)

// Mode is one state of the machine. The set of variants is closed: every
// implementation lives in this file.
type Mode interface {
	// Kind is a stable snake_case identifier used in logs and the
	// simulator status line.
	Kind() string
	isMode()
}

// Splash shows the boot screen until Until or the first button press.
type Splash struct {
	Until float64
}

// MainMenu offers Start Game and Exit.
type MainMenu struct {
	Selected int
}

// DifficultySelect picks Easy, Medium or Hard.
type DifficultySelect struct {
	Selected int
}

// LevelSelect picks a level. Selected is zero-based; level = Selected+1.
type LevelSelect struct {
	Selected int
}

// NameEntry builds the player's name one letter at a time.
type NameEntry struct {
	Name   string
	Letter int // Index into Alphabet
}

// Playing runs the engine.
type Playing struct {
	Engine *engine.Engine
}

// GameOver shows the final score and the top entries for the level.
type GameOver struct {
	Selected   int
	Score      int
	HighScores []highscore.Entry
}

// PoweredOff is entered after Exit. It is terminal.
type PoweredOff struct{}

func (Splash) Kind() string           { return "splash" }
func (MainMenu) Kind() string         { return "main_menu" }
func (DifficultySelect) Kind() string { return "difficulty" }
func (LevelSelect) Kind() string      { return "level_select" }
func (NameEntry) Kind() string        { return "name_entry" }
func (Playing) Kind() string          { return "playing" }
func (GameOver) Kind() string         { return "game_over" }
func (PoweredOff) Kind() string       { return "powered_off" }

func (Splash) isMode()           {}
func (MainMenu) isMode()         {}
func (DifficultySelect) isMode() {}
func (LevelSelect) isMode()      {}
func (NameEntry) isMode()        {}
func (Playing) isMode()          {}
func (GameOver) isMode()         {}
func (PoweredOff) isMode()       {}

// CurrentLetter returns the letter under the cursor.
func (n NameEntry) CurrentLetter() byte {
	return Alphabet[n.Letter%len(Alphabet)]
}

// Level returns the one-based level number under the cursor.
func (l LevelSelect) Level() int {
	return l.Selected + config.MinLevel
}
