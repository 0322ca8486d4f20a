package ports

import "github.com/access-ci/nvport/internal/core/domain"

// ImageValidator checks an installation image against the canonical layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=image.go -destination=mocks/mock_image.go -package=mocks
type ImageValidator interface {
	// Validate inspects the directory tree rooted at root. It is
	// deterministic and has no side effects; the same predicate serves
	// post-creation verification and pre-test verification.
	Validate(root string) (domain.ImageReport, error)
}

// ManifestReader parses addon manifest files.
type ManifestReader interface {
	// Read parses the manifest at path. A missing file or a manifest
	// without a name yields the default addon name, not an error.
	Read(path string) (domain.AddonManifest, error)
}
