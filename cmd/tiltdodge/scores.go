package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
	"github.com/vovakirdan/tiltdodge/internal/platform/tui"
	"github.com/vovakirdan/tiltdodge/internal/storage"
)

var (
	scoresBoard  bool
	scoresClear  bool
	scoresStats  bool
	scoresRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty] [level]",
	Short: "View high scores",
	Long: `Display the stored high scores.

Without arguments every difficulty/level with scores is listed. With a
difficulty (easy, medium, hard) only that difficulty is listed, and with
a level (1-10) only that table.

Run statistics are shown when the SQLite backend is in use.

Examples:
  tiltdodge scores
  tiltdodge scores hard
  tiltdodge scores easy 3
  tiltdodge scores --board
  tiltdodge scores --stats
  tiltdodge scores hard 3 --recent 5
  tiltdodge scores medium 2 --clear`,
	Args: cobra.MaximumNArgs(2),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&scoresBoard, "board", false, "Browse scores in an interactive scoreboard")
	scoresCmd.Flags().BoolVar(&scoresClear, "clear", false, "Delete scores and run history for one difficulty/level")
	scoresCmd.Flags().BoolVar(&scoresStats, "stats", false, "Summarize the run history of every played difficulty/level")
	scoresCmd.Flags().IntVar(&scoresRecent, "recent", 0, "Also list the N most recent runs of each table")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadDeviceConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr)

	keys, err := selectKeys(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if scoresClear {
		clearScores(cfg, args, keys, logger)
		return
	}

	scores := openScores(cfg, logger)
	defer scores.close()

	if scoresBoard {
		w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			w, h = 80, 24
		}
		if err := tui.RunScoreboard(scores.store, scores.stats, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if scoresStats {
		printAllStats(scores.db)
		return
	}

	table := scores.store.Load()
	if keys == nil {
		keys = table.Keys()
	}

	printed := 0
	for _, key := range keys {
		entries := table.Top(key)
		if len(entries) == 0 {
			continue
		}
		printTable(key, entries, scores.stats)
		if scoresRecent > 0 && scores.db != nil {
			printRecent(scores.db, key, scoresRecent)
		}
		printed++
	}
	if printed == 0 {
		fmt.Println("No scores recorded yet. Play a game first!")
	}
}

// selectKeys turns the optional difficulty and level arguments into score
// keys. A nil result means all keys present in the table.
func selectKeys(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	d, err := config.ParseDifficulty(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 2 {
		level, err := strconv.Atoi(args[1])
		if err != nil || level < 1 || level > config.MaxLevel {
			return nil, fmt.Errorf("invalid level %q (expected 1-%d)", args[1], config.MaxLevel)
		}
		return []string{config.Key(d, level)}, nil
	}
	keys := make([]string, 0, config.MaxLevel)
	for level := 1; level <= config.MaxLevel; level++ {
		keys = append(keys, config.Key(d, level))
	}
	return keys, nil
}

// printTable prints one score table with its run stats, if available.
func printTable(key string, entries []highscore.Entry, stats tui.StatsSource) {
	fmt.Printf("\n=== %s ===\n", key)
	fmt.Printf("%-6s %-6s %10s\n", "Rank", "Name", "Score")
	fmt.Println("------------------------")
	for i, e := range entries {
		fmt.Printf("%-6d %-6s %10d\n", i+1, e.Name, e.Score)
	}

	if stats == nil {
		return
	}
	s, err := stats.Stats(key)
	if err != nil || s.RunsCount == 0 {
		return
	}
	fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Last: %s\n",
		s.RunsCount, s.BestScore, s.AvgScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
}

// printRecent lists the latest runs for key.
func printRecent(db *storage.Store, key string, limit int) {
	runs, err := db.RecentRuns(key, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-3s %6d\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Name, r.Score)
	}
}

// printAllStats prints one summary row per played key.
func printAllStats(db *storage.Store) {
	if db == nil {
		fmt.Fprintln(os.Stderr, "Error: --stats is only supported with the sqlite backend")
		os.Exit(1)
	}
	all, err := db.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet. Play a game first!")
		return
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%-10s %6s %6s %8s %10s  %s\n", "Key", "Runs", "Best", "Avg", "Total", "Last played")
	fmt.Println("--------------------------------------------------------------")
	for _, k := range keys {
		s := all[k]
		fmt.Printf("%-10s %6d %6d %8.1f %10d  %s\n",
			s.Key, s.RunsCount, s.BestScore, s.AvgScore, s.TotalScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

// clearScores deletes one key from the SQLite backend.
func clearScores(cfg config.DeviceConfig, args []string, keys []string, logger *log.Logger) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Error: --clear requires a difficulty and a level")
		os.Exit(1)
	}
	if cfg.Storage.Backend != config.BackendSQLite {
		fmt.Fprintln(os.Stderr, "Error: --clear is only supported with the sqlite backend")
		os.Exit(1)
	}
	db, err := openSQLite(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ClearKey(keys[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("scores cleared", "key", keys[0])
	fmt.Printf("Cleared scores for %s\n", keys[0])
}
