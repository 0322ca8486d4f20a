// Package fs provides the filesystem prober and installation-image
// validator adapters.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// statFallbackInterval bounds how stale the watcher view may get; some
// editors and installers write in ways fsnotify misses.
const statFallbackInterval = 500 * time.Millisecond

// Prober implements ports.Prober using os and fsnotify.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Exists reports whether the path exists.
func (p *Prober) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads the file at path as text.
func (p *Prober) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(zerr.Wrap(domain.ErrPathNotFound, "read text"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return string(data), nil
}

// WaitForPath blocks until the path exists or the timeout elapses. It
// watches the nearest existing ancestor directory and polls as a fallback,
// since the external application creates the path from another process.
func (p *Prober) WaitForPath(ctx context.Context, path string, timeout time.Duration) error {
	if p.Exists(path) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close() //nolint:errcheck // best effort close in defer

	// The parent may not exist yet either; walk up to something watchable.
	dir := filepath.Dir(path)
	for dir != filepath.Dir(dir) && !p.Exists(dir) {
		dir = filepath.Dir(dir)
	}
	if err := watcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
	}

	ticker := time.NewTicker(statFallbackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrTimeoutExceeded, "waiting for path"), "path", path), "timeout", timeout.String())
			}
			return ctx.Err()
		case <-watcher.Events:
			if p.Exists(path) {
				return nil
			}
		case err := <-watcher.Errors:
			if err != nil {
				return zerr.Wrap(err, "watcher error")
			}
		case <-ticker.C:
			if p.Exists(path) {
				return nil
			}
		}
	}
}
