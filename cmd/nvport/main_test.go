package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	// Point work dir at a temp dir so the run log does not land in the
	// package directory.
	tmpDir := t.TempDir()
	cfg := "work_dir: " + tmpDir + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "nvport.yaml"), []byte(cfg), 0o600))

	exitCode := run([]string{"--config", tmpDir, "version"})

	assert.Equal(t, 0, exitCode)
	assert.FileExists(t, filepath.Join(tmpDir, "nvport.log"))
}

func TestConfigDirFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate value", []string{"--config", "/etc/nvport", "verify"}, "/etc/nvport"},
		{"equals form", []string{"verify", "--config=/etc/nvport"}, "/etc/nvport"},
		{"absent", []string{"verify"}, ""},
		{"dangling flag", []string{"verify", "--config"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configDirFlag(tt.args))
		})
	}
}
