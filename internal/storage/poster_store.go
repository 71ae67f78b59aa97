// Package storage persists per-user poster images on the local filesystem.
// Each poster is a single PNG file named <imdbID>_<email>.png, so two users
// uploading for the same title never see each other's image.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type PosterStore struct {
	dir string
}

// NewPosterStore ensures the poster directory exists and returns a store
// rooted at it.
func NewPosterStore(dir string) (*PosterStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create poster dir: %w", err)
	}
	return &PosterStore{dir: dir}, nil
}

func (s *PosterStore) path(imdbID, email string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", imdbID, email))
}

// Save writes the raw PNG bytes for the (imdbID, email) pair, replacing any
// previous upload by the same user for the same title.
func (s *PosterStore) Save(imdbID, email string, data []byte) error {
	return os.WriteFile(s.path(imdbID, email), data, 0o644)
}

// Load reads the poster stored for the (imdbID, email) pair. The underlying
// I/O error is returned unwrapped: the retrieval endpoint's contract passes
// its message through to the client verbatim.
func (s *PosterStore) Load(imdbID, email string) ([]byte, error) {
	return os.ReadFile(s.path(imdbID, email))
}
