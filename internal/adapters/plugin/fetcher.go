// Package plugin acquires the automation addon source tree from its
// upstream repository archive.
package plugin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
)

// Fetcher implements ports.PluginSource by downloading the repository
// archive over HTTP and extracting its addon source directory. No git
// client is involved; the archive endpoint serves a zip of the branch.
type Fetcher struct {
	archiveURL string
	client     *http.Client
	archiver   ports.Archiver
	writer     ports.TreeWriter
	logger     ports.Logger
}

// NewFetcher creates a Fetcher for the given archive URL.
func NewFetcher(archiveURL string, archiver ports.Archiver, writer ports.TreeWriter, logger ports.Logger) *Fetcher {
	return &Fetcher{
		archiveURL: archiveURL,
		client:     http.DefaultClient,
		archiver:   archiver,
		writer:     writer,
		logger:     logger,
	}
}

var _ ports.PluginSource = (*Fetcher)(nil)

// FetchPlugin downloads the repository archive, extracts it into a scratch
// directory and copies the addon source directory to destDir. Any previous
// copy at destDir is replaced.
func (f *Fetcher) FetchPlugin(ctx context.Context, destDir string) error {
	scratch, err := os.MkdirTemp("", "nvport-plugin-")
	if err != nil {
		return zerr.Wrap(err, "creating scratch directory")
	}
	defer os.RemoveAll(scratch) //nolint:errcheck // best effort cleanup

	archivePath := filepath.Join(scratch, "plugin.zip")
	if err := f.download(ctx, archivePath); err != nil {
		return err
	}

	extracted := filepath.Join(scratch, "extracted")
	if err := f.archiver.Unzip(archivePath, extracted); err != nil {
		return zerr.Wrap(err, "extracting plugin archive")
	}

	src, err := locateSourceDir(extracted)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(destDir); err != nil {
		return zerr.With(zerr.Wrap(err, "removing previous plugin copy"), "path", destDir)
	}
	if err := f.writer.CopyTree(src, destDir); err != nil {
		return zerr.Wrap(err, "copying plugin source")
	}

	f.logger.Info(fmt.Sprintf("plugin source fetched to %s", destDir))
	return nil
}

func (f *Fetcher) download(ctx context.Context, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.archiveURL, nil)
	if err != nil {
		return zerr.Wrap(err, "building plugin archive request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "downloading plugin archive"), "url", f.archiveURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.New(fmt.Sprintf("plugin archive download returned %d", resp.StatusCode)),
			"url", f.archiveURL)
	}

	out, err := os.Create(dest) //nolint:gosec // dest is inside the scratch directory
	if err != nil {
		return zerr.Wrap(err, "creating plugin archive file")
	}

	_, err = io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return zerr.Wrap(err, "writing plugin archive file")
	}
	return nil
}

// locateSourceDir finds the addon source directory inside an extracted
// archive. Branch archives nest everything under a single
// <repo>-<branch> directory, so both the root and its direct children
// are checked.
func locateSourceDir(extracted string) (string, error) {
	direct := filepath.Join(extracted, domain.PluginSourceDir)
	if isDir(direct) {
		return direct, nil
	}

	entries, err := os.ReadDir(extracted)
	if err != nil {
		return "", zerr.Wrap(err, "reading extracted archive")
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		nested := filepath.Join(extracted, e.Name(), domain.PluginSourceDir)
		if isDir(nested) {
			return nested, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrPathNotFound, "plugin archive has no addon source directory"),
		"dir", domain.PluginSourceDir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
