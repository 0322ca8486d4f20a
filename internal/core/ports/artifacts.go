package ports

import "github.com/access-ci/nvport/internal/core/domain"

// ArtifactStore persists information about produced artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the artifact info for a given name.
	// Returns nil, nil if not found.
	Get(name string) (*domain.ArtifactInfo, error)

	// Put stores the artifact info.
	Put(info domain.ArtifactInfo) error
}

// Archiver builds and unpacks zip archives.
type Archiver interface {
	// ZipDir archives the contents of srcDir into destZip. Paths inside
	// the archive are relative to srcDir.
	ZipDir(srcDir, destZip string) error

	// Unzip extracts srcZip into destDir.
	Unzip(srcZip, destDir string) error
}

// Hasher computes content checksums of files.
type Hasher interface {
	// FileHash returns the checksum of the file's content as a hex string.
	FileHash(path string) (string, error)
}
