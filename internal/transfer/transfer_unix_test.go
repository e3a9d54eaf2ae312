//go:build unix

package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestCopyMover_Symlinks(t *testing.T) {
	src := filepath.Join(t.TempDir(), "A")
	dst := filepath.Join(t.TempDir(), "A")
	makeTree(t, src)
	require.NoError(t, os.Symlink("a.txt", filepath.Join(src, "link")))

	require.NoError(t, NewCopyMover().Move(src, dst))

	target, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", target)
}

func TestCopyMover_FailedCopyKeepsSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "A")
	dst := filepath.Join(t.TempDir(), "A")
	makeTree(t, src)
	require.NoError(t, unix.Mkfifo(filepath.Join(src, "pipe"), 0o644))

	err := NewCopyMover().Move(src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")

	assert.NoDirExists(t, dst)
	assert.FileExists(t, filepath.Join(src, "a.txt"))
}

// readOnlyTree creates root/ro holding a file, then makes ro read-only.
func readOnlyTree(t *testing.T, root string) {
	t.Helper()
	ro := filepath.Join(root, "ro")
	require.NoError(t, os.MkdirAll(ro, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ro, "keep.txt"), []byte("keep"), 0o644))
	require.NoError(t, os.Chmod(ro, 0o555))
	t.Cleanup(func() { os.Chmod(ro, 0o755) })
}

func TestCopyTree_RestoresDirectoryModes(t *testing.T) {
	src := filepath.Join(t.TempDir(), "A")
	dst := filepath.Join(t.TempDir(), "A")
	require.NoError(t, os.Mkdir(src, 0o750))
	readOnlyTree(t, src)
	t.Cleanup(func() { os.Chmod(filepath.Join(dst, "ro"), 0o755) })

	require.NoError(t, CopyTree(src, dst))

	info, err := os.Stat(filepath.Join(dst, "ro"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o555), info.Mode().Perm())

	info, err = os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	assert.FileExists(t, filepath.Join(dst, "ro", "keep.txt"))
}

func TestCopyMover_ReadOnlyFolder(t *testing.T) {
	src := filepath.Join(t.TempDir(), "A")
	dst := filepath.Join(t.TempDir(), "A")
	require.NoError(t, os.Mkdir(src, 0o755))
	readOnlyTree(t, src)
	t.Cleanup(func() { os.Chmod(filepath.Join(dst, "ro"), 0o755) })

	require.NoError(t, NewCopyMover().Move(src, dst))

	assert.NoDirExists(t, src)
	info, err := os.Stat(filepath.Join(dst, "ro"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o555), info.Mode().Perm())
	assert.FileExists(t, filepath.Join(dst, "ro", "keep.txt"))
}
