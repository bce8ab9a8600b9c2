package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "dir/a.txt", []byte("a"), 0o644))

	assert.True(t, Exists(fs, "dir/a.txt"))
	assert.True(t, Exists(fs, "dir"))
	assert.False(t, Exists(fs, "dir/b.txt"))
}

func TestExists_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o755))
	name := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(name, []byte("A=1"), 0o644))
	require.NoError(t, os.Chmod(dir, 0))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	assert.False(t, Exists(afero.NewOsFs(), name))
}

func TestFileSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.bin", make([]byte, 42), 0o644))

	size, err := FileSize(fs, "a.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(42), size)

	_, err = FileSize(fs, "missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
