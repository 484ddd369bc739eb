package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/logger"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/progression"
)

// JSONStore keeps the whole state in a single indented JSON snapshot,
// matching the persisted layout the app has used since its first release.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultState(dates.Today()))
}

// Load reads the snapshot merged over defaults: fields absent from the
// stored record keep their default values, so schema additions default
// gracefully. A malformed snapshot falls back to a fresh state; no partial
// recovery is attempted.
func (s *JSONStore) Load() (*models.AppState, error) {
	today := dates.Today()
	state := models.DefaultState(today)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	if err := json.Unmarshal(data, state); err != nil {
		logger.Warn("Snapshot is malformed, starting fresh", "path", s.path, "error", err)
		return models.DefaultState(today), nil
	}

	state.Normalize(today)
	state.UserStats = progression.Recompute(state.UserStats)
	return state, nil
}

func (s *JSONStore) Save(state *models.AppState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Close() error {
	return nil
}
