//go:build !windows

package proc_test

import (
	"context"
	"testing"
	"time"

	"github.com/access-ci/nvport/internal/adapters/proc"
	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func TestLauncher_Run_Success(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	require.NoError(t, l.Run(context.Background(), "true"))
}

func TestLauncher_Run_NonZeroExit(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	err := l.Run(context.Background(), "false")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalProcess)
}

func TestLauncher_Run_ContextTimeout(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Run(ctx, "sleep", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLauncher_Spawn_RunningAndTerminate(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	h, err := l.Spawn(context.Background(), "sleep", "30")
	require.NoError(t, err)
	assert.Positive(t, h.PID())
	assert.True(t, h.Running())

	require.NoError(t, h.Terminate())
	assert.False(t, h.Running())

	// Terminating twice is not an error.
	require.NoError(t, h.Terminate())
}

func TestLauncher_Spawn_HandleOutlivesExit(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	h, err := l.Spawn(context.Background(), "true")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return !h.Running() }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, h.Terminate())
}

func TestLauncher_FindProcess_OwnSpawn(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	h, err := l.Spawn(context.Background(), "sleep", "30")
	require.NoError(t, err)
	defer func() { _ = h.Terminate() }()

	found, err := l.FindProcess("sleep")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, h.PID(), found.PID())
}

func TestLauncher_FindProcess_NoMatch(t *testing.T) {
	l := proc.NewLauncher(nopLogger{})

	found, err := l.FindProcess("no_such_process_name_xyz")
	require.NoError(t, err)
	assert.Nil(t, found)
}
