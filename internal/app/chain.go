package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/access-ci/nvport/internal/core/domain"
)

// BuildOptions controls the full Build chain.
type BuildOptions struct {
	// Version pins the release; empty means latest stable.
	Version string
	// PluginDir is a pre-existing addon plugin source tree. Empty means
	// fetch the upstream source into the work directory.
	PluginDir string
	// SkipTest skips the functional-execution step. The image is still
	// validated.
	SkipTest bool
}

// Build runs the whole workflow: fetch the release and the plugin source,
// install, build and install the addon, write the default settings, create
// the portable image, verify it, test it, package it. The chain aborts at
// the first failed step and returns that step's result.
func (a *App) Build(ctx context.Context, opts BuildOptions) domain.OperationResult {
	version, res := a.fetchRelease(ctx, opts.Version)
	if !res.Success {
		return res
	}
	a.log.Info(res.Message)

	pluginDir := opts.PluginDir
	steps := []struct {
		name string
		run  func(context.Context) domain.OperationResult
	}{
		{"fetch-plugin", func(ctx context.Context) domain.OperationResult {
			if pluginDir != "" {
				return domain.Succeeded("using plugin source at "+pluginDir, nil)
			}
			pluginDir = a.PluginPath()
			return a.FetchPlugin(ctx)
		}},
		{"install", func(ctx context.Context) domain.OperationResult {
			return a.Install(ctx, a.InstallerPath(version))
		}},
		{"build-addon", func(ctx context.Context) domain.OperationResult {
			return a.BuildAddon(ctx, pluginDir)
		}},
		{"install-addon", func(ctx context.Context) domain.OperationResult {
			return a.InstallAddon(ctx, a.addonBundlePath(pluginDir))
		}},
		{"configure", a.Configure},
		{"create-portable", a.CreatePortable},
		{"verify", func(ctx context.Context) domain.OperationResult {
			return a.VerifyImage(ctx, a.cfg.PortableDir)
		}},
		{"test", func(ctx context.Context) domain.OperationResult {
			if opts.SkipTest {
				return domain.Succeeded("functional test skipped", nil)
			}
			return a.TestImage(ctx, a.cfg.PortableDir)
		}},
		{"package", func(ctx context.Context) domain.OperationResult {
			return a.Package(ctx, a.cfg.PortableDir, "nvda_portable_"+version)
		}},
	}

	for _, step := range steps {
		a.log.Info("step: " + step.name)
		res = step.run(ctx)
		if !res.Success {
			res.Diagnostics = append(res.Diagnostics, "failed at step "+step.name)
			return res
		}
		if res.Message != "" {
			a.log.Info(res.Message)
		}
	}

	return domain.Succeeded(fmt.Sprintf("portable image %s built, verified and packaged", version),
		nil)
}

// addonBundlePath is where BuildAddon places the bundle for a plugin tree.
func (a *App) addonBundlePath(pluginDir string) string {
	manifest, err := a.manifests.Read(filepath.Join(pluginDir, "manifest.ini"))
	if err != nil {
		return filepath.Join(a.cfg.WorkDir, domain.DefaultAddonName+addonFileExt)
	}
	return filepath.Join(a.cfg.WorkDir, manifest.Name+addonFileExt)
}
