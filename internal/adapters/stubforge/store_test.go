package stubforge_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cull/internal/adapters/stubforge"
	"go.trai.ch/cull/internal/core/domain"
)

func testStub(body string) domain.StubPackage {
	return domain.StubPackage{
		ID: domain.NewPackageID("winapi", "0.3.9"),
		Files: []domain.StubFile{
			{Path: "Cargo.toml", Body: []byte(body)},
			{Path: "src/lib.rs", Body: []byte("//! stub\n")},
		},
	}
}

func TestStore_Materialize(t *testing.T) {
	t.Parallel()

	store := stubforge.NewStore()

	t.Run("writes files under a content addressed directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)

		assert.Equal(t, root, filepath.Dir(dir))
		assert.True(t, strings.HasPrefix(filepath.Base(dir), "winapi-0.3.9-"), "dir %q should carry the package prefix", dir)

		manifest, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
		require.NoError(t, err)
		assert.Equal(t, "[package]\n", string(manifest))

		source, err := os.ReadFile(filepath.Join(dir, "src", "lib.rs"))
		require.NoError(t, err)
		assert.Equal(t, "//! stub\n", string(source))
	})

	t.Run("same content lands in the same directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		first, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)
		second, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("changed content lands in a new directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		first, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)
		second, err := store.Materialize(root, testStub("[package]\nedition = \"2015\"\n"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("existing directory is not rewritten", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)

		// Scribble over a stored file. A second materialize of the same
		// stub must keep the directory as is.
		marker := filepath.Join(dir, "Cargo.toml")
		require.NoError(t, os.WriteFile(marker, []byte("scribbled"), domain.FilePerm))

		again, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)
		require.Equal(t, dir, again)

		content, err := os.ReadFile(marker)
		require.NoError(t, err)
		assert.Equal(t, "scribbled", string(content))
	})

	t.Run("missing root is created on demand", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "nested", "store")
		dir, err := store.Materialize(root, testStub("[package]\n"))
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
