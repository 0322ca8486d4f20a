package ports

import (
	"context"

	"github.com/access-ci/nvport/internal/core/domain"
)

// ReleaseSource resolves and downloads published releases of the target
// application.
//
//go:generate go run go.uber.org/mock/mockgen -source=release.go -destination=mocks/mock_release.go -package=mocks
type ReleaseSource interface {
	// Latest resolves the newest stable release from the release listing.
	Latest(ctx context.Context) (domain.ReleaseInfo, error)

	// ForVersion returns the release info for a specific version without
	// consulting the listing.
	ForVersion(version string) domain.ReleaseInfo

	// Download fetches the release installer to dest.
	Download(ctx context.Context, info domain.ReleaseInfo, dest string) error
}

// PluginSource acquires the automation addon source tree from its upstream
// repository.
type PluginSource interface {
	// FetchPlugin materializes the addon source at destDir, replacing any
	// previous copy.
	FetchPlugin(ctx context.Context, destDir string) error
}
