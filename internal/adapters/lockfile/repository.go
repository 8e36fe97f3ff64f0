package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockRepository = (*Repository)(nil)

// Repository implements ports.LockRepository on the local filesystem.
type Repository struct{}

// NewRepository creates a new Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Load parses the lock document at path.
func (r *Repository) Load(path string) (*domain.LockDocument, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrLockNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock document"), "path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Save renders the document and writes it to path.
func (r *Repository) Save(path string, doc *domain.LockDocument) error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Clean(path), Render(doc), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock document"), "path", path)
	}
	return nil
}
