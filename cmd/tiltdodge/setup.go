package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
	"github.com/vovakirdan/tiltdodge/internal/platform/tui"
	"github.com/vovakirdan/tiltdodge/internal/storage"
)

// logFileName is written under ~/.tiltdodge while the simulator owns the
// terminal.
const logFileName = "tiltdodge.log"

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiltdodge",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// openLogFile opens the simulator log file for appending.
func openLogFile() (*os.File, error) {
	path := config.ExpandHome(filepath.Join("~", ".tiltdodge", logFileName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadDeviceConfig loads the device config and applies --db and --levels.
func loadDeviceConfig() (config.DeviceConfig, error) {
	cfg, err := config.LoadDevice(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Storage.LevelsDir = flagLevelsDir
	}
	return cfg, nil
}

// newProvider builds the level provider for the configured override dirs.
func newProvider(cfg config.DeviceConfig, logger *log.Logger) *config.Provider {
	return config.NewProvider(logger, config.DefaultLevelSources(cfg.Storage.LevelsDir)...)
}

// scoreStorage is an opened high-score backend.
type scoreStorage struct {
	store *highscore.Store
	db    *storage.Store  // nil unless SQLite opened
	stats tui.StatsSource // nil unless SQLite opened
	close func()
}

// openScores opens the configured high-score backend. If SQLite cannot be
// opened the game still runs, without persistence.
func openScores(cfg config.DeviceConfig, logger *log.Logger) scoreStorage {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		path := config.ExpandHome(cfg.Storage.Path)
		logger.Debug("using JSON score file", "path", path)
		return scoreStorage{
			store: highscore.NewStore(highscore.NewFileBackend(path), logger),
			close: func() {},
		}
	default:
		db, err := openSQLite(cfg)
		if err != nil {
			logger.Warn("could not open scores database", "path", cfg.Storage.Path, "error", err)
			return scoreStorage{
				store: highscore.NewStore(nil, logger),
				close: func() {},
			}
		}
		return scoreStorage{
			store: highscore.NewStore(db, logger),
			db:    db,
			stats: db,
			close: func() { db.Close() },
		}
	}
}

// openSQLite opens the configured SQLite score database.
func openSQLite(cfg config.DeviceConfig) (*storage.Store, error) {
	return storage.Open(cfg.Storage.Path)
}
