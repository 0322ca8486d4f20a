// Package manifest parses addon manifest files.
//
// The manifest is a line-oriented "key = value" format. Only the name field
// matters to the builder; everything else is ignored.
package manifest

import (
	"os"
	"strings"

	"github.com/access-ci/nvport/internal/core/domain"
)

// Reader implements ports.ManifestReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the manifest at path. A missing file or a manifest without a
// name yields the default addon name rather than an error; the addon is
// still usable, just anonymous.
func (r *Reader) Read(path string) (domain.AddonManifest, error) {
	m := domain.AddonManifest{Name: domain.DefaultAddonName}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return m, nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) != "name" {
			continue
		}
		if name := unquote(strings.TrimSpace(value)); name != "" {
			m.Name = name
		}
		break
	}

	return m, nil
}

// unquote strips one matching pair of surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
