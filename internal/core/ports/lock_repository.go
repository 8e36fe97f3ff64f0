package ports

import "go.trai.ch/cull/internal/core/domain"

// LockRepository defines the interface for reading and rewriting lock
// documents on disk.
//
//go:generate mockgen -source=lock_repository.go -destination=mocks/mock_lock_repository.go -package=mocks
type LockRepository interface {
	// Load parses the lock document at path.
	Load(path string) (*domain.LockDocument, error)

	// Save renders the document and writes it to path.
	Save(path string, doc *domain.LockDocument) error
}
