// Package stubforge renders and stores stand-in packages for excluded
// dependencies. A stub carries just enough surface for the package manager
// to resolve and compile against: a manifest, an empty library source, and
// the integrity descriptor vendored trees require.
package stubforge

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/zerr"
)

// libSource is the entire library body of a stub. The crate compiles to
// nothing; anything that actually links against an excluded package fails
// the build, which is the point of removing it.
const libSource = "//! Stub crate. The original package was excluded from this build.\n"

// manifestEdition is pinned to the oldest edition so a stub never demands a
// newer toolchain than the package it replaces.
const manifestEdition = "2015"

var _ ports.Synthesizer = (*Forge)(nil)

// Forge implements ports.Synthesizer.
type Forge struct {
	mode domain.StubMode
}

// NewForge creates a Forge producing stubs in the given mode.
func NewForge(mode domain.StubMode) *Forge {
	return &Forge{mode: mode}
}

// Synthesize renders the stub for one package. The output depends only on
// the id, the checksum, the features and the forge mode, so the same inputs
// always produce identical files.
func (f *Forge) Synthesize(id domain.PackageID, checksum string, features []string) (domain.StubPackage, error) {
	name := id.Name.String()
	version := id.Version.String()
	if name == "" || version == "" {
		return domain.StubPackage{}, zerr.With(zerr.Wrap(domain.ErrStubFailed, "package id is incomplete"), "id", id.String())
	}

	manifest, err := f.renderManifest(name, version, features)
	if err != nil {
		return domain.StubPackage{}, zerr.With(err, "id", id.String())
	}

	descriptor, err := renderChecksumDescriptor(checksum)
	if err != nil {
		return domain.StubPackage{}, zerr.With(err, "id", id.String())
	}

	return domain.StubPackage{
		ID: id,
		Files: []domain.StubFile{
			{Path: domain.ManifestFileName, Body: manifest},
			{Path: domain.StubSourcePath(), Body: []byte(libSource)},
			{Path: domain.ChecksumFileName, Body: descriptor},
		},
	}, nil
}

// renderManifest writes the stub's Cargo.toml. In full mode the manifest
// declares every feature the table assigns to the name, so downstream
// packages enabling features on the original still resolve.
func (f *Forge) renderManifest(name, version string, features []string) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("[package]\n")
	b.WriteString("name = \"" + name + "\"\n")
	b.WriteString("version = \"" + version + "\"\n")
	b.WriteString("edition = \"" + manifestEdition + "\"\n")

	if f.mode == domain.StubFull && len(features) > 0 {
		sorted := slices.Clone(features)
		slices.Sort(sorted)
		sorted = slices.Compact(sorted)

		b.WriteString("\n[features]\n")
		for _, feature := range sorted {
			if !validFeatureName(feature) {
				return nil, zerr.With(zerr.Wrap(domain.ErrStubFailed, "invalid feature name"), "feature", feature)
			}
			b.WriteString(feature + " = []\n")
		}
	}

	return b.Bytes(), nil
}

// validFeatureName bounds feature names to the characters the manifest
// format allows, so a bad table entry cannot corrupt the rendered file.
func validFeatureName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_-+./", r):
		default:
			return false
		}
	}
	return true
}

// checksumDescriptor is the integrity descriptor a vendored package carries.
// An empty files map skips per-file verification; the package checksum is
// either the upstream value or the null sentinel when none is known.
type checksumDescriptor struct {
	Files   map[string]string `json:"files"`
	Package *string           `json:"package"`
}

func renderChecksumDescriptor(checksum string) ([]byte, error) {
	desc := checksumDescriptor{Files: map[string]string{}}
	if checksum != "" {
		desc.Package = &checksum
	}

	data, err := json.Marshal(desc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal checksum descriptor")
	}
	return append(data, '\n'), nil
}
