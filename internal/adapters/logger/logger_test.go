package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/access-ci/nvport/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestLogger_InfoAndWarn(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("downloading installer")
	l.Warn("strategy silent-install failed")

	out := buf.String()
	assert.Contains(t, out, "downloading installer")
	assert.Contains(t, out, "strategy silent-install failed")
}

func TestLogger_ErrorRendersCauseChain(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	err := zerr.Wrap(zerr.New("connection refused"), "automation endpoint unreachable")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: automation endpoint unreachable")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "connection refused")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_AttachFileTeesRecords(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	path := filepath.Join(t.TempDir(), "nvport.log")
	require.NoError(t, l.AttachFile(path))

	l.Info("portable image verified")

	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "portable image verified")
	// Text handler records carry a timestamp field.
	assert.Contains(t, string(data), "time=")
	assert.Contains(t, buf.String(), "portable image verified")
}
