package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/access-ci/nvport/internal/core/ports"
)

// Writer implements ports.TreeWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.TreeWriter = (*Writer)(nil)

// CopyTree recursively copies the directory src to dst, creating dst.
func (w *Writer) CopyTree(src, dst string) error {
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "copying directory tree"), "src", src)
	}
	return nil
}

// CopyFile copies a single file, creating parent directories of dst.
func (w *Writer) CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return zerr.Wrap(err, "creating destination directory")
	}
	if err := copyFile(src, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "copying file"), "src", src)
	}
	return nil
}

// WriteFile writes content to path, creating parent directories.
func (w *Writer) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerr.Wrap(err, "creating parent directory")
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // path comes from config
		return zerr.With(zerr.Wrap(err, "writing file"), "path", path)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src comes from the walk or config
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
