// Package history persists generated tasks to a rolling JSON file. The file
// holds at most the configured number of recent tasks; each append rewrites
// the whole file. A missing or malformed file reads as an empty history.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"shutterplan/pkg/model"
)

// DefaultKeep is the rolling window size when the config does not set one.
const DefaultKeep = 7

// Store is a file-backed task history.
type Store struct {
	path string
	keep int
}

// New creates a store for the given file path, keeping the most recent keep
// entries (DefaultKeep if keep is not positive).
func New(path string, keep int) *Store {
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &Store{path: path, keep: keep}
}

// Load reads the stored tasks, oldest first. A missing file yields an empty
// slice; malformed content is logged and treated as empty rather than
// blocking generation.
func (s *Store) Load() []model.Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("history read failed", "path", s.path, "error", err)
		}
		return nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		slog.Warn("history file malformed, starting fresh", "path", s.path, "error", err)
		return nil
	}
	return tasks
}

// Append adds a task and rewrites the file, evicting the oldest entries
// beyond the window.
func (s *Store) Append(task model.Task) error {
	tasks := append(s.Load(), task)
	if len(tasks) > s.keep {
		tasks = tasks[len(tasks)-s.keep:]
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
