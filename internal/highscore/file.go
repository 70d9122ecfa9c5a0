package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend stores the table as a single JSON document, the same layout
// the device writes to its flash filesystem:
//
//	{"easy_03": [{"name": "BBB", "score": 90}, {"name": "AAA", "score": 50}]}
type FileBackend struct {
	Path string
}

// NewFileBackend creates a JSON file backend.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// LoadTable reads the file. A missing file is an empty table.
func (b *FileBackend) LoadTable() (Table, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", b.Path, err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("highscore: cannot parse %s: %w", b.Path, err)
	}
	return t, nil
}

// SaveTable replaces the file. It writes a temporary file first so a
// power cut mid-write leaves the previous table intact.
func (b *FileBackend) SaveTable(t Table) error {
	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("highscore: cannot encode table: %w", err)
	}

	tmp := b.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.Path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", b.Path, err)
	}
	return nil
}

var _ Backend = (*FileBackend)(nil)
