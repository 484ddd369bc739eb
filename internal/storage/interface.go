package storage

import "github.com/stride-cli/stride/internal/models"

// Provider persists the whole application state as one snapshot. The app
// reducer writes a full snapshot after every state transition; writers are
// single-process, last write wins.
type Provider interface {
	// Init creates the backing file and its directory with a fresh state.
	Init() error

	// Load reads the snapshot merged over defaults. A missing or
	// unparseable snapshot yields a fresh default state, never an error
	// the caller must branch on beyond logging.
	Load() (*models.AppState, error)

	// Save rewrites the snapshot from the given state.
	Save(*models.AppState) error

	// Path returns the backing file path.
	Path() string

	Close() error
}
