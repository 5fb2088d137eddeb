package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"b.pak", "a.PAK", "notes.txt", "sub/c.pak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := FindFilesByExtension(dir, ".pak")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.PAK"),
		filepath.Join(dir, "b.pak"),
		filepath.Join(dir, "sub", "c.pak"),
	}, files)
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".pak")
	require.Error(t, err)
}

func TestTotalSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(b, make([]byte, 32), 0o644))

	assert.Equal(t, uint64(42), TotalSize([]string{a, b}))
	assert.Equal(t, uint64(42), TotalSize([]string{a, b, filepath.Join(dir, "missing")}))
	assert.Zero(t, TotalSize(nil))
}
