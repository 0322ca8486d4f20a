package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/access-ci/nvport/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead_NamedAddon(t *testing.T) {
	path := writeManifest(t, "name = CommandSocket\nversion = 1.0\n")

	m, err := NewReader().Read(path)

	require.NoError(t, err)
	require.Equal(t, "CommandSocket", m.Name)
}

func TestRead_QuotedName(t *testing.T) {
	cases := map[string]string{
		"double": `name = "CommandSocket"`,
		"single": `name = 'CommandSocket'`,
	}
	for label, content := range cases {
		t.Run(label, func(t *testing.T) {
			m, err := NewReader().Read(writeManifest(t, content))

			require.NoError(t, err)
			require.Equal(t, "CommandSocket", m.Name)
		})
	}
}

func TestRead_MissingFileFallsBackToDefault(t *testing.T) {
	m, err := NewReader().Read(filepath.Join(t.TempDir(), "absent.ini"))

	require.NoError(t, err)
	require.Equal(t, domain.DefaultAddonName, m.Name)
}

func TestRead_NoNameKeyFallsBackToDefault(t *testing.T) {
	path := writeManifest(t, "version = 1.0\nauthor = somebody\n")

	m, err := NewReader().Read(path)

	require.NoError(t, err)
	require.Equal(t, domain.DefaultAddonName, m.Name)
}

func TestRead_EmptyNameValueFallsBackToDefault(t *testing.T) {
	path := writeManifest(t, "name =\n")

	m, err := NewReader().Read(path)

	require.NoError(t, err)
	require.Equal(t, domain.DefaultAddonName, m.Name)
}
