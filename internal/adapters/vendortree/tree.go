// Package vendortree gives the engine access to a vendored dependency
// directory: listing what the tree holds and deleting single entries
// without touching their neighbours.
package vendortree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VendorTree = (*Tree)(nil)

// Tree implements ports.VendorTree on the local filesystem.
type Tree struct{}

// NewTree creates a new vendor tree adapter.
func NewTree() *Tree {
	return &Tree{}
}

// Dirs lists the top level directories of the vendor tree at root in
// lexical order. Stray files between the package directories are ignored.
func (t *Tree) Dirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrVendorNotFound, "path", root)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read vendor directory"), "path", root)
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// Remove deletes the vendored entry dir under root. The entry name must be
// a plain directory name; anything resolving outside root is rejected so a
// crafted tree cannot steer the prune at other paths. Removing an entry
// that is already gone is a no-op.
func (t *Tree) Remove(root, dir string) error {
	if dir == "" || dir == "." || dir == ".." || dir != filepath.Base(dir) {
		return zerr.With(zerr.Wrap(domain.ErrPruneFailed, "invalid vendor entry name"), "dir", dir)
	}

	target := filepath.Join(root, dir)
	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPruneFailed.Error()), "path", target)
	}
	return nil
}
