package lockfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cull/internal/adapters/lockfile"
	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/zerr"
)

const sample = `# This file is automatically @generated by Cargo.
# It is not intended for manual editing.
version = 3

[[package]]
name = "adler"
version = "1.0.2"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "f26201604c87b1e01bd3d98f8d5d9a8fcbb815e8cedb41ffccbeb4bf593a35fe"

[[package]]
name = "app"
version = "0.1.0"
dependencies = [
 "adler",
 "windows-sys 0.52.0",
]

[[package]]
name = "windows-sys"
version = "0.52.0"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "282be5f36a8ce781fad8c8ae18fa3f9beff57ec1b52cb3de0789201425d9a33d"
`

func TestParse_Document(t *testing.T) {
	doc, err := lockfile.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"# This file is automatically @generated by Cargo.",
		"# It is not intended for manual editing.",
		"version = 3",
		"",
	}, doc.Preamble)

	require.Equal(t, 3, doc.Len())

	adler := doc.Packages[0]
	assert.Equal(t, "adler@1.0.2", adler.ID.String())
	assert.Equal(t, "registry+https://github.com/rust-lang/crates.io-index", adler.Source)
	assert.Equal(t, "f26201604c87b1e01bd3d98f8d5d9a8fcbb815e8cedb41ffccbeb4bf593a35fe", adler.Checksum)
	assert.Empty(t, adler.Dependencies)

	app := doc.Packages[1]
	assert.Equal(t, "app@0.1.0", app.ID.String())
	assert.Empty(t, app.Source)
	assert.Empty(t, app.Checksum)
	require.Len(t, app.Dependencies, 2)
	assert.True(t, app.Dependencies[0].Bare())
	assert.Equal(t, "adler", app.Dependencies[0].String())
	assert.False(t, app.Dependencies[1].Bare())
	assert.Equal(t, "windows-sys 0.52.0", app.Dependencies[1].String())
}

func TestParse_UnknownFieldsRideAlong(t *testing.T) {
	input := `version = 3

[[package]]
name = "foo"
version = "1.0.0"
checksum = "abc123"
replace = "foo-fork 1.0.0"
` // replace is not a field the rewriter knows.

	doc, err := lockfile.Parse([]byte(input))
	require.NoError(t, err)

	require.Len(t, doc.Packages[0].Extra, 1)
	assert.Equal(t, "replace", doc.Packages[0].Extra[0].Key)
	assert.Equal(t, `replace = "foo-fork 1.0.0"`, doc.Packages[0].Extra[0].Raw)

	// A rewrite must not lose the line.
	out := lockfile.Render(doc)
	assert.Contains(t, string(out), `replace = "foo-fork 1.0.0"`)
}

func TestParse_InlineDependencyForms(t *testing.T) {
	input := `[[package]]
name = "a"
version = "1.0.0"
dependencies = []

[[package]]
name = "b"
version = "1.0.0"
dependencies = [ "a", "c 2.0.0" ]

[[package]]
name = "c"
version = "2.0.0"
`

	doc, err := lockfile.Parse([]byte(input))
	require.NoError(t, err)

	assert.Empty(t, doc.Packages[0].Dependencies)
	require.Len(t, doc.Packages[1].Dependencies, 2)
	assert.Equal(t, "a", doc.Packages[1].Dependencies[0].String())
	assert.Equal(t, "c 2.0.0", doc.Packages[1].Dependencies[1].String())
}

func TestParse_EmptyAndHeaderOnly(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		doc, err := lockfile.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Len())
	})

	t.Run("Preamble without entries", func(t *testing.T) {
		doc, err := lockfile.Parse([]byte("# nothing resolved yet\nversion = 3\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Len())
		assert.Len(t, doc.Preamble, 2)
	})
}

func TestParse_MalformedEntries(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex int
		contains  string
	}{
		{
			name:      "Missing name",
			input:     "[[package]]\nversion = \"1.0.0\"\n",
			wantIndex: 0,
			contains:  "entry has no name",
		},
		{
			name:      "Missing version",
			input:     "[[package]]\nname = \"foo\"\n",
			wantIndex: 0,
			contains:  "entry has no version",
		},
		{
			name:      "Unquoted value",
			input:     "[[package]]\nname = foo\nversion = \"1.0.0\"\n",
			wantIndex: 0,
			contains:  "quoted string",
		},
		{
			name: "Second entry carries the index",
			input: "[[package]]\nname = \"ok\"\nversion = \"1.0.0\"\n\n" +
				"[[package]]\nname = \"broken\"\n",
			wantIndex: 1,
			contains:  "entry has no version",
		},
		{
			name:      "Unterminated dependency list",
			input:     "[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\ndependencies = [\n \"bar\",\n",
			wantIndex: 0,
			contains:  "never closes",
		},
		{
			name:      "Unquoted dependency reference",
			input:     "[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\ndependencies = [\n bar,\n]\n",
			wantIndex: 0,
			contains:  "quoted string",
		},
		{
			name:      "Junk line inside entry",
			input:     "[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\nwhat is this\n",
			wantIndex: 0,
			contains:  "key value pair",
		},
		{
			name: "Duplicate package",
			input: "[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\n\n" +
				"[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\n",
			wantIndex: 1,
			contains:  "duplicate package",
		},
		{
			name: "Trailing section is rejected",
			input: "[[package]]\nname = \"foo\"\nversion = \"1.0.0\"\n\n" +
				"[metadata]\n",
			wantIndex: 1,
			contains:  "unexpected line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lockfile.Parse([]byte(tt.input))
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrMalformedEntry)
			require.ErrorContains(t, err, tt.contains)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.wantIndex, zErr.Metadata()["entry_index"])
		})
	}
}

func TestRoundTrip_CanonicalInputIsStable(t *testing.T) {
	doc, err := lockfile.Parse([]byte(sample))
	require.NoError(t, err)

	out := lockfile.Render(doc)
	assert.Equal(t, sample, string(out), "canonical input must survive byte for byte")
}

func TestRoundTrip_RenderParseFixedPoint(t *testing.T) {
	// Non-canonical spacing and inline lists normalize once, then stay put.
	input := `version = 3

[[package]]
name   =   "foo"
version = "1.0.0"
dependencies = [ "bar" ]

[[package]]
name = "bar"
version = "0.2.0"
`

	first, err := lockfile.Parse([]byte(input))
	require.NoError(t, err)
	rendered := lockfile.Render(first)

	second, err := lockfile.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, rendered, lockfile.Render(second))
	assert.Equal(t, first, second)
}
