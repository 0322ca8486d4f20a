package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/access-ci/nvport/internal/adapters/fs"
)

func TestWriter_CopyTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "synthDrivers"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nvda.exe"), []byte("bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "synthDrivers", "espeak.dll"), []byte("dll"), 0o644))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, fs.NewWriter().CopyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "nvda.exe"))
	require.NoError(t, err)
	require.Equal(t, "bin", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "synthDrivers", "espeak.dll"))
	require.NoError(t, err)
	require.Equal(t, "dll", string(data))
}

func TestWriter_CopyTreeMissingSource(t *testing.T) {
	err := fs.NewWriter().CopyTree(filepath.Join(t.TempDir(), "absent"), t.TempDir())
	require.Error(t, err)
}

func TestWriter_CopyFileCreatesParents(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bundle.nvda-addon")
	require.NoError(t, os.WriteFile(src, []byte("zip"), 0o644))

	dst := filepath.Join(t.TempDir(), "userConfig", "addons", "bundle.nvda-addon")
	require.NoError(t, fs.NewWriter().CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "zip", string(data))
}

func TestWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image", "portable.ini")

	require.NoError(t, fs.NewWriter().WriteFile(path, "[portable]\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[portable]\n", string(data))
}
