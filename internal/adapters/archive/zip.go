// Package archive builds and unpacks zip archives. Addon bundles and
// packaged images are plain zip files.
package archive

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/access-ci/nvport/internal/core/ports"
)

// Zipper implements ports.Archiver on archive/zip.
type Zipper struct{}

// NewZipper creates a new Zipper.
func NewZipper() *Zipper {
	return &Zipper{}
}

var _ ports.Archiver = (*Zipper)(nil)

// ZipDir archives the contents of srcDir into destZip. Entry names are
// slash-separated paths relative to srcDir.
func (z *Zipper) ZipDir(srcDir, destZip string) error {
	out, err := os.Create(destZip) //nolint:gosec // dest is under the configured work dir
	if err != nil {
		return zerr.Wrap(err, "creating archive")
	}
	defer out.Close()

	w := zip.NewWriter(out)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)

		if d.IsDir() {
			_, err = w.Create(name + "/")
			return err
		}

		entry, err := w.Create(name)
		if err != nil {
			return err
		}
		in, err := os.Open(path) //nolint:gosec // path comes from the walk
		if err != nil {
			return err
		}
		_, err = io.Copy(entry, in)
		in.Close()
		return err
	})
	if err != nil {
		w.Close()
		return zerr.With(zerr.Wrap(err, "archiving directory"), "dir", srcDir)
	}

	if err := w.Close(); err != nil {
		return zerr.Wrap(err, "finalizing archive")
	}
	return out.Close()
}

// Unzip extracts srcZip into destDir. Entries that would escape destDir
// are rejected.
func (z *Zipper) Unzip(srcZip, destDir string) error {
	r, err := zip.OpenReader(srcZip)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "opening archive"), "path", srcZip)
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return zerr.Wrap(err, "creating extraction directory")
	}

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return zerr.With(zerr.Wrap(err, "extracting archive entry"), "entry", f.Name)
		}
	}
	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return zerr.New("entry path escapes extraction directory")
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode()) //nolint:gosec // target is prefix-checked above
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in) //nolint:gosec // archive sources are trusted build inputs
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
