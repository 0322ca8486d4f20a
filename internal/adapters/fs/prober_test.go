package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/access-ci/nvport/internal/adapters/fs"
	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	p := fs.NewProber()

	path := filepath.Join(tmpDir, "nvda.exe")
	assert.False(t, p.Exists(path))

	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0o600))
	assert.True(t, p.Exists(path))
}

func TestProber_ReadText(t *testing.T) {
	tmpDir := t.TempDir()
	p := fs.NewProber()

	path := filepath.Join(tmpDir, "portable.ini")
	require.NoError(t, os.WriteFile(path, []byte("[portable]\n"), 0o600))

	text, err := p.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "[portable]\n", text)
}

func TestProber_ReadTextMissing(t *testing.T) {
	p := fs.NewProber()

	_, err := p.ReadText(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
}

func TestProber_WaitForPath_AlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	p := fs.NewProber()

	path := filepath.Join(tmpDir, "ready")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.NoError(t, p.WaitForPath(context.Background(), path, time.Second))
}

func TestProber_WaitForPath_AppearsLater(t *testing.T) {
	tmpDir := t.TempDir()
	p := fs.NewProber()

	// The portable directory is created by another process; simulate with a
	// delayed write, including the not-yet-existing parent.
	path := filepath.Join(tmpDir, "nvda_portable", "nvda.exe")
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.MkdirAll(filepath.Dir(path), 0o750)
		_ = os.WriteFile(path, []byte("MZ"), 0o600)
	}()

	require.NoError(t, p.WaitForPath(context.Background(), path, 5*time.Second))
}

func TestProber_WaitForPath_Timeout(t *testing.T) {
	tmpDir := t.TempDir()
	p := fs.NewProber()

	err := p.WaitForPath(context.Background(), filepath.Join(tmpDir, "never"), 50*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeoutExceeded)
}

func TestHasher_FileHash(t *testing.T) {
	tmpDir := t.TempDir()
	h := fs.NewHasher()

	path := filepath.Join(tmpDir, "artifact.zip")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	first, err := h.FileHash(path)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := h.FileHash(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, os.WriteFile(path, []byte("different"), 0o600))
	third, err := h.FileHash(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestHasher_FileHashMissing(t *testing.T) {
	h := fs.NewHasher()

	_, err := h.FileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
