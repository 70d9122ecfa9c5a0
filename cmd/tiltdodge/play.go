package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiltdodge/internal/core"
	"github.com/vovakirdan/tiltdodge/internal/device"
	"github.com/vovakirdan/tiltdodge/internal/platform/tui"
)

// Rows and columns the simulator needs around the display.
const (
	chromeCols = 2
	chromeRows = 5
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal simulator",
	Long: `Run the game in a terminal simulator of the board.

Controls:
  k / ]        - Turn the knob clockwise
  j / [        - Turn the knob counter-clockwise
  Space        - Main button (select, add letter, fire)
  Enter        - Knob button (start the run from name entry)
  a d / ← →    - Left and right buttons
  ↑ ↓ / w s    - Tilt the board forward and back
  ?            - More keys
  Q/Ctrl+C     - Quit

Logs are written to ~/.tiltdodge/tiltdodge.log while playing.

Examples:
  tiltdodge play
  tiltdodge play --seed 42
  tiltdodge play --levels ./levels --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadDeviceConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check the terminal can fit the display
	needW := cfg.Display.Width + chromeCols
	needH := (cfg.Display.Height+1)/2 + chromeRows
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the simulator needs at least %dx%d\n", w, h, needW, needH)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	scores := openScores(cfg, logger)
	defer scores.close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := tui.NewBoard()
	group := core.NewGroup()
	app, err := device.New(board.Hardware(group), newProvider(cfg, logger), scores.store, cfg, seed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulator started", "seed", seed, "backend", cfg.Storage.Backend)
	if err := tui.Run(app, board, group, cfg.Display.Width, cfg.Display.Height, cfg.LoopInterval()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", err)
		os.Exit(1)
	}
}
