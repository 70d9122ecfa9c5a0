package highscore

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltdodge/internal/config"
)

// Backend persists the whole table as one unit.
type Backend interface {
	LoadTable() (Table, error)
	SaveTable(Table) error
}

// RunLogger is implemented by backends that also keep a history of every
// finished run.
type RunLogger interface {
	LogRun(key, name string, score int) error
}

// Store is the high-score store used by the mode machine. Storage errors
// are logged and absorbed; callers always get a usable result.
type Store struct {
	backend Backend
	logger  *log.Logger
}

// NewStore wraps a backend. With a nil backend Load is always empty and
// Record persists nothing.
func NewStore(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{backend: backend, logger: logger}
}

// Load returns the persisted table, or an empty table if storage is
// missing or corrupt.
func (s *Store) Load() Table {
	if s.backend == nil {
		return Table{}
	}
	t, err := s.backend.LoadTable()
	if err != nil {
		s.logger.Warn("high scores unreadable, starting empty", "error", err)
		return Table{}
	}
	if t == nil {
		return Table{}
	}
	return t.Sanitize()
}

// Record inserts a finished run and returns the top entries for its key.
// The table is loaded fresh and saved immediately.
func (s *Store) Record(d config.Difficulty, level int, name string, score int) []Entry {
	if score < 0 {
		score = 0
	}
	key := config.Key(d, level)
	entry := Entry{Name: NormalizeName(name), Score: score}

	t := s.Load()
	top := t.Insert(key, entry)

	if s.backend != nil {
		if err := s.backend.SaveTable(t); err != nil {
			s.logger.Warn("could not save high scores", "key", key, "error", err)
		}
		if rl, ok := s.backend.(RunLogger); ok {
			if err := rl.LogRun(key, entry.Name, entry.Score); err != nil {
				s.logger.Warn("could not log run", "key", key, "error", err)
			}
		}
	}

	s.logger.Debug("score recorded", "key", key, "name", entry.Name, "score", entry.Score)
	return top
}

// TopFor returns the current entries for a difficulty and level.
func (s *Store) TopFor(d config.Difficulty, level int) []Entry {
	return s.Load().Top(config.Key(d, level))
}
