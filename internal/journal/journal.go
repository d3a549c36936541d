// internal/journal/journal.go
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bstardust/pptx-media-audit/internal/logger"
)

// Journal tracks which media assets have already been exported so an
// interrupted export can resume.
type Journal struct {
	mu      sync.Mutex
	path    string
	Entries map[string]Entry `json:"entries"`
}

// Entry records one exported asset.
type Entry struct {
	FileName  string    `json:"fileName"`
	ObjectKey string    `json:"objectKey"`
	Exported  bool      `json:"exported"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates a journal backed by the given path. An empty path falls back
// to a dotfile in the user's home directory.
func New(path string) *Journal {
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".pptx-media-audit-journal.json")
		} else {
			path = ".pptx-media-audit-journal.json"
		}
	}

	return &Journal{
		path:    path,
		Entries: make(map[string]Entry),
	}
}

// Load loads the journal from disk. A missing file starts a fresh journal.
func (j *Journal) Load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No journal at %s, starting fresh", j.path)
			return nil
		}
		return err
	}

	var loaded Journal
	if err := json.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if loaded.Entries != nil {
		j.Entries = loaded.Entries
	}
	logger.Info("Loaded journal with %d entries from %s", len(j.Entries), j.path)
	return nil
}

// Save writes the journal to disk.
func (j *Journal) Save() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.save()
}

func (j *Journal) save() error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.path, data, 0644)
}

// MarkExported records a file as exported and persists the journal.
func (j *Journal) MarkExported(fileName, objectKey string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.Entries[fileName] = Entry{
		FileName:  fileName,
		ObjectKey: objectKey,
		Exported:  true,
		Timestamp: time.Now(),
	}

	if err := j.save(); err != nil {
		logger.Error("Failed to save journal: %v", err)
	}
}

// IsExported checks whether a file has been exported already.
func (j *Journal) IsExported(fileName string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry, exists := j.Entries[fileName]
	return exists && entry.Exported
}

// ListExported returns the file names of all completed exports.
func (j *Journal) ListExported() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	var exported []string
	for name, entry := range j.Entries {
		if entry.Exported {
			exported = append(exported, name)
		}
	}
	return exported
}

// Clear resets the journal.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.Entries = make(map[string]Entry)
	if err := j.save(); err != nil {
		logger.Error("Failed to save journal: %v", err)
	}
}
