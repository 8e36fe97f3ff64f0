package ports

import "go.trai.ch/cull/internal/core/domain"

// StubStore defines the interface for the content addressable stub store
// used by fetch-time substitution.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StubStore interface {
	// Materialize writes the stub into the store rooted at root and returns
	// the directory holding it. The location is derived from the stub's
	// content, so the same stub always lands in the same place and a second
	// call is a no-op.
	Materialize(root string, stub domain.StubPackage) (string, error)
}
