package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return dir
}

func TestFindByExtensions_WalksRecursively(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, "a.dspf", "sub/b.dds", "sub/deep/c.dspf", "ignore.txt")

	files, err := FindByExtensions(dir, []string{".dspf", ".dds"})
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		assert.NotContains(t, f, "ignore.txt")
	}
}

func TestFindByExtensions_SingleFile(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, "only.dspf")
	path := filepath.Join(dir, "only.dspf")

	files, err := FindByExtensions(path, []string{".dspf"})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	// A file that fails the predicate yields nothing, not an error.
	files, err = FindByExtensions(path, []string{".dds"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindByExtensions_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindByExtensions(filepath.Join(t.TempDir(), "nope"), []string{".dspf"})
	require.Error(t, err)
}
