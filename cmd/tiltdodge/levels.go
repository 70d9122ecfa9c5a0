package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltdodge/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [difficulty]",
	Short: "Show level configs and where they come from",
	Long: `Print the resolved config for each level of a difficulty (or of all
difficulties) and whether it came from an override file or the built-in
formula.

Override files are searched in --levels, then ~/.tiltdodge/levels, then
./levels, as <difficulty>_<NN>.yaml (or .yml/.json).

Examples:
  tiltdodge levels
  tiltdodge levels hard
  tiltdodge levels easy --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadDeviceConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr)

	difficulties := config.Difficulties
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulties = []config.Difficulty{d}
	}

	provider := newProvider(cfg, logger)
	for _, d := range difficulties {
		fmt.Printf("\n=== %s ===\n", d)
		fmt.Printf("%-9s %-10s %6s %6s %5s %8s %6s  %s\n",
			"Key", "Name", "Speed", "Spawn", "Max", "Length", "Tilt", "Source")
		fmt.Println("------------------------------------------------------------------")
		for level := 1; level <= config.MaxLevel; level++ {
			r := provider.Explain(d, level)
			c := r.Config
			fmt.Printf("%-9s %-10s %6.2f %6d %5d %8s %6.2f  %s\n",
				r.Key, c.Name, c.ScrollSpeed, c.SpawnIntervalFrames, c.MaxObstacles,
				fmt.Sprintf("%d-%d", c.ObstacleMinLength, c.ObstacleMaxLength),
				c.TiltThreshold, r.Source)
		}
	}
}
