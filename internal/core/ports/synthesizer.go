package ports

import "go.trai.ch/cull/internal/core/domain"

// Synthesizer defines the interface for producing stub packages.
//
//go:generate mockgen -source=synthesizer.go -destination=mocks/mock_synthesizer.go -package=mocks
type Synthesizer interface {
	// Synthesize renders a stand-in for the identified package. checksum is
	// the upstream checksum when the lock document carries one, "" when it
	// does not. features lists the feature names the stub must declare.
	// The rendered bytes are deterministic in all three inputs.
	Synthesize(id domain.PackageID, checksum string, features []string) (domain.StubPackage, error)
}
