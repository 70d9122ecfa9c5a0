// tiltdodge is the host build of the tilt-dodge handheld game: a terminal
// simulator of the board plus tools for inspecting scores and level tuning.
//
// Usage:
//
//	tiltdodge play                          - Play in the terminal simulator
//	tiltdodge scores [difficulty] [level]   - Show high scores
//	tiltdodge levels [difficulty]           - Show resolved level configs
//
// Global flags:
//
//	--config <path>     - Device config YAML
//	--db <path>         - Score storage path (default from device config)
//	--levels <dir>      - Level override directory
//	--seed <value>      - RNG seed for reproducible obstacles
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables that provide flag defaults. A .env file in the
// working directory is loaded first.
const (
	envConfig = "TILTDODGE_CONFIG"
	envDB     = "TILTDODGE_DB"
	envLevels = "TILTDODGE_LEVELS"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagLevelsDir  string
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltdodge",
	Short: "Tilt Dodge - a reflex game for a tiny handheld, in your terminal",
	Long: `Tilt Dodge is a falling-bar dodging game built for a microcontroller
board with a 128x64 display, a rotary encoder, buttons and an
accelerometer. This binary runs the same game core in a terminal
simulator and inspects its persistent data.

Available commands:
  play     - Play in the terminal simulator
  scores   - View high scores
  levels   - Show level configs and where they come from

Examples:
  tiltdodge play
  tiltdodge play --seed 42
  tiltdodge scores hard 3
  tiltdodge scores --board
  tiltdodge levels medium`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnv(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to device config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to score storage (default from device config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with level override files")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// applyEnv loads .env and fills flags the user did not set from the
// environment.
func applyEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	bind := func(name, env string, target *string) {
		if flags.Changed(name) {
			return
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*target = v
		}
	}
	bind("config", envConfig, &flagConfigPath)
	bind("db", envDB, &flagDBPath)
	bind("levels", envLevels, &flagLevelsDir)
	return nil
}
