package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

// Document is the serialized output of one aggregation run.
type Document struct {
	LastUpdated string            `json:"lastUpdated"`
	Stats       conference.Stats  `json:"stats"`
	Months      conference.Months `json:"months"`
}

// IDs returns the set of conference IDs present in the document.
func (d *Document) IDs() map[string]bool {
	ids := make(map[string]bool)
	if d == nil {
		return ids
	}
	for _, c := range d.Months.All() {
		if c.ID != "" {
			ids[c.ID] = true
		}
	}
	return ids
}

// Store reads and writes snapshot documents at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given snapshot path. A leading ~/ expands
// to the user home directory.
func NewStore(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	return &Store{path: path}, nil
}

// Path returns the resolved snapshot path.
func (s *Store) Path() string { return s.path }

// Load reads the previous snapshot. A missing file is not an error: the first
// run has nothing to diff against and gets a nil document.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &doc, nil
}

// Save writes the document atomically: a temp file in the same directory is
// renamed over the target so readers never observe a partial snapshot.
func (s *Store) Save(doc *Document) error {
	if doc.LastUpdated == "" {
		doc.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
