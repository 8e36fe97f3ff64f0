package lockfile_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cull/internal/adapters/lockfile"
	"go.trai.ch/cull/internal/core/domain"
)

func TestRender_Golden(t *testing.T) {
	doc := &domain.LockDocument{
		Preamble: []string{
			"# This file is automatically @generated by Cargo.",
			"# It is not intended for manual editing.",
			"version = 4",
			"",
		},
		Packages: []domain.Package{
			{
				ID:       domain.NewPackageID("libc", "0.2.155"),
				Source:   "registry+https://github.com/rust-lang/crates.io-index",
				Checksum: "97b3888a4aecf77e811145cadf6eef5901f4782c53886191b2f693f24761847c",
			},
			{
				ID: domain.NewPackageID("app", "0.1.0"),
				Dependencies: []domain.DepRef{
					domain.ParseDepRef("libc"),
					domain.ParseDepRef("winapi 0.3.9"),
				},
			},
			{
				ID:       domain.NewPackageID("winapi", "0.3.9"),
				Source:   "registry+https://github.com/rust-lang/crates.io-index",
				Checksum: "5c839a674fcd7a98952e593242ea400abe93992746761e38641405d28b00f419",
				Extra: []domain.Field{
					{Key: "replace", Raw: `replace = "winapi-stub 0.3.9"`},
				},
			},
		},
	}

	g := goldie.New(t)
	g.Assert(t, "render_document", lockfile.Render(doc))
}

func TestRender_Deterministic(t *testing.T) {
	doc, err := lockfile.Parse([]byte(sample))
	assert.NoError(t, err)

	first := lockfile.Render(doc)
	for range 10 {
		assert.Equal(t, first, lockfile.Render(doc))
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	out := lockfile.Render(&domain.LockDocument{})
	assert.Empty(t, out)
}
