package stubforge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StubStore = (*Store)(nil)

// Store implements ports.StubStore using a content addressed directory
// layout: every stub lands under <root>/<name-version>-<digest>, where the
// digest covers the stub's file paths and bodies. Identical stubs share a
// directory, and a changed input lands somewhere new instead of mutating
// what a previous run may still reference.
type Store struct{}

// NewStore creates a new stub store.
func NewStore() *Store {
	return &Store{}
}

// Materialize writes the stub into the store rooted at root and returns its
// directory. An existing directory for the same content is reused without
// rewriting.
func (s *Store) Materialize(root string, stub domain.StubPackage) (string, error) {
	dir := filepath.Join(filepath.Clean(root), stub.Dir()+"-"+digest(stub))

	if _, err := os.Stat(dir); err == nil {
		return dir, nil
	}

	for _, file := range stub.Files {
		path := filepath.Join(dir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create stub directory"), "path", path)
		}
		//nolint:gosec // Path is derived from the store root and stub content
		if err := os.WriteFile(path, file.Body, domain.FilePerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to write stub file"), "path", path)
		}
	}

	return dir, nil
}

// digest hashes the stub's files in order. Paths and bodies are separated
// by NUL bytes so moving a byte between files changes the digest.
func digest(stub domain.StubPackage) string {
	hasher := xxhash.New()
	for _, file := range stub.Files {
		_, _ = hasher.WriteString(file.Path)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.Write(file.Body)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
