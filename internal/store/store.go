package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// Run is one saved parse: the record sequence plus enough context to patch
// and re-export it later.
type Run struct {
	Source      string           `json:"source"` // file path or URL the text came from
	DefaultYear string           `json:"default_year"`
	Records     []*record.Record `json:"records"`
	SavedAt     string           `json:"saved_at"` // RFC3339 timestamp
}

// Store persists parse runs under a data directory.
type Store struct {
	dataDir string
}

// New creates a Store, expanding a leading ~ and creating the directory.
func New(dataDir string) (*Store, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dataDir: dataDir}, nil
}

func (s *Store) runPath(name string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("run_%s.json", name))
}

// SaveRun writes a run to disk under the given name.
func (s *Store) SaveRun(name string, run *Run) error {
	run.SavedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run: %w", err)
	}

	if err := os.WriteFile(s.runPath(name), data, 0644); err != nil {
		return fmt.Errorf("writing run: %w", err)
	}
	return nil
}

// LoadRun reads a previously saved run. A missing run is an explicit error;
// patching or exporting a run that was never saved is a user mistake, not
// an empty result.
func (s *Store) LoadRun(name string) (*Run, error) {
	data, err := os.ReadFile(s.runPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no saved run named %q", name)
		}
		return nil, fmt.Errorf("reading run: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parsing run: %w", err)
	}
	return &run, nil
}
