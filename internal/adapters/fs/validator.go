package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/access-ci/nvport/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validator checks an installation image against the canonical layout.
// It is the single predicate shared by post-creation verification and
// pre-test verification.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate inspects the directory tree rooted at root. It is read-only and
// deterministic given a stable filesystem snapshot.
func (v *Validator) Validate(root string) (domain.ImageReport, error) {
	report := domain.ImageReport{}

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			report.Missing = append([]string{}, domain.RequiredMembers...)
			return report, nil
		}
		return report, zerr.With(zerr.Wrap(err, "failed to stat image root"), "path", root)
	}

	for _, member := range domain.RequiredMembers {
		if _, err := os.Stat(filepath.Join(root, member)); err != nil {
			if os.IsNotExist(err) {
				report.Missing = append(report.Missing, member)
				continue
			}
			return report, zerr.With(zerr.Wrap(err, "failed to stat required member"), "member", member)
		}
	}

	report.HasFlag = v.hasPortableFlag(root)
	report.HasAddon = v.hasAutomationAddon(root)
	report.OK = len(report.Missing) == 0 && report.HasFlag && report.HasAddon

	return report, nil
}

// hasPortableFlag reports whether the flag file contains the portable marker.
func (v *Validator) hasPortableFlag(root string) bool {
	data, err := os.ReadFile(filepath.Join(root, domain.ImageFlagFile)) //nolint:gosec // path built from constants
	if err != nil {
		return false
	}
	return strings.Contains(string(data), domain.PortableMarker)
}

// hasAutomationAddon reports whether the addons directory contains a
// subdirectory whose name carries one of the known automation tokens.
// The match is case-sensitive and an OR over the tokens.
func (v *Validator) hasAutomationAddon(root string) bool {
	entries, err := os.ReadDir(domain.AddonsDir(root))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, token := range domain.AddonNameTokens {
			if strings.Contains(entry.Name(), token) {
				return true
			}
		}
	}
	return false
}
