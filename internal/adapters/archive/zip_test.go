package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZipDirUnzip_RoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "top.txt"), []byte("top"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "deep", "nested.txt"), []byte("nested"), 0o644))

	z := NewZipper()
	archive := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, z.ZipDir(src, archive))

	dest := t.TempDir()
	require.NoError(t, z.Unzip(archive, dest))

	top, err := os.ReadFile(filepath.Join(dest, "top.txt"))
	require.NoError(t, err)
	require.Equal(t, "top", string(top))

	nested, err := os.ReadFile(filepath.Join(dest, "sub", "deep", "nested.txt"))
	require.NoError(t, err)
	require.Equal(t, "nested", string(nested))
}

func TestZipDir_EntryNamesAreRelativeSlashPaths(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "locale"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "locale", "en.txt"), []byte("en"), 0o644))

	archive := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, NewZipper().ZipDir(src, archive))

	r, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "locale/")
	require.Contains(t, names, "locale/en.txt")
}

func TestUnzip_RejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.zip")

	out, err := os.Create(archive)
	require.NoError(t, err)
	w := zip.NewWriter(out)
	entry, err := w.Create("../escape.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())

	dest := filepath.Join(dir, "dest")
	err = NewZipper().Unzip(archive, dest)

	require.Error(t, err)
	require.NoFileExists(t, filepath.Join(dir, "escape.txt"))
}

func TestUnzip_MissingArchiveFails(t *testing.T) {
	err := NewZipper().Unzip(filepath.Join(t.TempDir(), "absent.zip"), t.TempDir())
	require.Error(t, err)
}
