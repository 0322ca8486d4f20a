// Package app implements the entry points of the portable image builder.
//
// Every entry point returns a domain.OperationResult rather than a raw
// error: the CLI renders the result, and the Build chain inspects Success
// to decide whether to continue.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"github.com/access-ci/nvport/internal/engine/pipeline"
)

// processName is the executable name used to find lingering instances.
const processName = "nvda"

// addonFileExt is the packaged addon file extension.
const addonFileExt = ".nvda-addon"

// Deps bundles everything App needs. All fields are required.
type Deps struct {
	Config    *domain.Config
	Logger    ports.Logger
	Pipeline  *pipeline.Runner
	Launcher  ports.Launcher
	Prober    ports.Prober
	Net       ports.NetProbe
	Validator ports.ImageValidator
	Manifests ports.ManifestReader
	Releases  ports.ReleaseSource
	Plugins   ports.PluginSource
	Archiver  ports.Archiver
	Writer    ports.TreeWriter
	Store     ports.ArtifactStore
	Hasher    ports.Hasher
}

// App wires the adapters into the workflow entry points.
type App struct {
	cfg       *domain.Config
	log       ports.Logger
	pipe      *pipeline.Runner
	launcher  ports.Launcher
	prober    ports.Prober
	net       ports.NetProbe
	validator ports.ImageValidator
	manifests ports.ManifestReader
	releases  ports.ReleaseSource
	plugins   ports.PluginSource
	archiver  ports.Archiver
	writer    ports.TreeWriter
	store     ports.ArtifactStore
	hasher    ports.Hasher
}

// New creates a new App instance.
func New(d Deps) *App {
	return &App{
		cfg:       d.Config,
		log:       d.Logger,
		pipe:      d.Pipeline,
		launcher:  d.Launcher,
		prober:    d.Prober,
		net:       d.Net,
		validator: d.Validator,
		manifests: d.Manifests,
		releases:  d.Releases,
		plugins:   d.Plugins,
		archiver:  d.Archiver,
		writer:    d.Writer,
		store:     d.Store,
		hasher:    d.Hasher,
	}
}

// probe builds the standard verification probe from the configured timing.
func (a *App) probe(check func(ctx context.Context) (bool, string)) domain.VerificationProbe {
	return domain.VerificationProbe{
		Retries:  a.cfg.Timing.ProbeRetries,
		Interval: a.cfg.Timing.ProbeInterval,
		Check:    check,
	}
}

// installedExe returns the path of the system-installed executable.
func (a *App) installedExe() string {
	return filepath.Join(a.cfg.InstallDir, domain.ImageExecutable)
}

// InstallerPath returns where FetchRelease places the installer for a
// version. Install uses it as the default when no path is given.
func (a *App) InstallerPath(version string) string {
	return filepath.Join(a.cfg.WorkDir, fmt.Sprintf("nvda_%s.exe", version))
}

// PluginPath returns where FetchPlugin places the addon plugin source.
func (a *App) PluginPath() string {
	return filepath.Join(a.cfg.WorkDir, domain.PluginSourceDir)
}

// FetchRelease resolves the requested version (or the latest stable one
// when version is empty), downloads its installer and records the artifact.
func (a *App) FetchRelease(ctx context.Context, version string) domain.OperationResult {
	_, res := a.fetchRelease(ctx, version)
	return res
}

func (a *App) fetchRelease(ctx context.Context, version string) (string, domain.OperationResult) {
	var info domain.ReleaseInfo
	if version != "" {
		info = a.releases.ForVersion(version)
	} else {
		var err error
		info, err = a.releases.Latest(ctx)
		if err != nil {
			return "", domain.Failed(zerr.Wrap(err, "resolving latest release"), nil)
		}
	}

	dest := a.InstallerPath(info.Version)
	if err := a.releases.Download(ctx, info, dest); err != nil {
		return "", domain.Failed(err, nil)
	}
	if !a.prober.Exists(dest) {
		return "", domain.Failed(zerr.With(domain.ErrInstallerNotFound, "path", dest), nil)
	}

	a.recordArtifact("installer-"+info.Version, dest)
	return info.Version, domain.Succeeded(
		fmt.Sprintf("installer %s downloaded to %s", info.Version, dest), nil)
}

// FetchPlugin downloads the automation addon source from its upstream
// repository into the work directory.
func (a *App) FetchPlugin(ctx context.Context) domain.OperationResult {
	dest := a.PluginPath()
	if err := a.plugins.FetchPlugin(ctx, dest); err != nil {
		return domain.Failed(zerr.Wrap(err, "fetching plugin source"), nil)
	}

	manifest := filepath.Join(dest, "manifest.ini")
	if !a.prober.Exists(manifest) {
		return domain.Failed(zerr.With(domain.ErrVerificationFailed, "path", dest),
			[]string{fmt.Sprintf("%s missing from fetched plugin source", manifest)})
	}
	return domain.Succeeded(fmt.Sprintf("plugin source fetched to %s", dest), nil)
}

// Install installs the application system-wide from the given installer.
// An empty installerPath is rejected before any strategy runs.
func (a *App) Install(ctx context.Context, installerPath string) domain.OperationResult {
	if installerPath == "" || !a.prober.Exists(installerPath) {
		return domain.Failed(zerr.With(domain.ErrInstallerNotFound, "path", installerPath), nil)
	}

	strategies := []domain.Strategy{
		{
			Name:    "silent-install",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(ctx context.Context) error {
				if err := a.launcher.Run(ctx, installerPath, "--install-silent"); err != nil {
					return err
				}
				// The installer exits before its elevated child finishes
				// laying down files.
				return a.prober.WaitForPath(ctx, a.installedExe(), a.cfg.Timing.Settle)
			},
		},
		{
			Name:    "minimal-install",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(ctx context.Context) error {
				if err := a.launcher.Run(ctx, installerPath, "--install", "--silent", "--minimal"); err != nil {
					return err
				}
				return a.prober.WaitForPath(ctx, a.installedExe(), a.cfg.Timing.Settle)
			},
		},
	}

	res := a.pipe.Run(ctx, "system install", strategies, a.probe(func(_ context.Context) (bool, string) {
		if a.prober.Exists(a.installedExe()) {
			return true, ""
		}
		return false, fmt.Sprintf("%s not present", a.installedExe())
	}))

	// The installer can leave the application running.
	if res.Success {
		a.killLingering()
	}
	return res
}

// killLingering terminates any running instance left behind by an installer
// or exporter run. Best-effort.
func (a *App) killLingering() {
	h, err := a.launcher.FindProcess(processName)
	if err != nil || h == nil {
		return
	}
	if err := h.Terminate(); err != nil {
		a.log.Warn(fmt.Sprintf("could not terminate lingering process %d: %v", h.PID(), err))
	}
}

// BuildAddon packages the addon plugin source tree into a .nvda-addon file
// named after the manifest.
func (a *App) BuildAddon(ctx context.Context, pluginDir string) domain.OperationResult {
	if !a.prober.Exists(pluginDir) {
		return domain.Failed(zerr.With(domain.ErrPathNotFound, "path", pluginDir), nil)
	}

	manifest, err := a.manifests.Read(filepath.Join(pluginDir, "manifest.ini"))
	if err != nil {
		return domain.Failed(zerr.Wrap(err, "reading addon manifest"), nil)
	}

	out := filepath.Join(a.cfg.WorkDir, manifest.Name+addonFileExt)
	if err := a.archiver.ZipDir(pluginDir, out); err != nil {
		return domain.Failed(zerr.Wrap(err, "packaging addon"), nil)
	}

	a.recordArtifact("addon-"+manifest.Name, out)
	return domain.Succeeded(fmt.Sprintf("addon packaged to %s", out), nil)
}

// InstallAddon installs the packaged addon into the system installation's
// addons directory.
func (a *App) InstallAddon(ctx context.Context, addonPath string) domain.OperationResult {
	if !a.prober.Exists(addonPath) {
		return domain.Failed(zerr.With(domain.ErrPathNotFound, "path", addonPath), nil)
	}

	name := addonName(addonPath)
	addonsDir := domain.AddonsDir(a.cfg.InstallDir)

	strategies := []domain.Strategy{
		{
			Name:    "direct-unpack",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(_ context.Context) error {
				return a.archiver.Unzip(addonPath, filepath.Join(addonsDir, name))
			},
		},
		{
			// The application unpacks staged bundles itself on next start.
			Name:    "staged-copy",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(_ context.Context) error {
				return a.writer.CopyFile(addonPath, filepath.Join(addonsDir, name+addonFileExt+".pendingInstall"))
			},
		},
	}

	return a.pipe.Run(ctx, "addon install", strategies, a.probe(func(_ context.Context) (bool, string) {
		report, err := a.validator.Validate(a.cfg.InstallDir)
		if err != nil {
			return false, err.Error()
		}
		if report.HasAddon {
			return true, ""
		}
		return false, fmt.Sprintf("no addon directory matching %v under %s", domain.AddonNameTokens, addonsDir)
	}))
}

// addonName derives the addon directory name from the bundle filename.
func addonName(addonPath string) string {
	name := filepath.Base(addonPath)
	return strings.TrimSuffix(name, addonFileExt)
}

// Configure writes the default user settings into the system installation
// so the portable copy inherits them. The defaults select the capture
// synthesizer and disable the update checks that would otherwise block an
// unattended run with modal dialogs.
func (a *App) Configure(_ context.Context) domain.OperationResult {
	exe := a.installedExe()
	if !a.prober.Exists(exe) {
		return domain.Failed(zerr.With(domain.ErrPathNotFound, "path", exe), nil)
	}

	path := domain.SettingsPath(a.cfg.InstallDir)
	if err := a.writer.WriteFile(path, domain.DefaultSettings); err != nil {
		return domain.Failed(zerr.Wrap(err, "writing default settings"), nil)
	}

	text, err := a.prober.ReadText(path)
	if err != nil {
		return domain.Failed(zerr.Wrap(err, "reading back settings"), nil)
	}
	if !strings.Contains(text, domain.SettingsSynthID) {
		return domain.Failed(zerr.With(domain.ErrVerificationFailed, "path", path),
			[]string{fmt.Sprintf("settings do not select the %s synthesizer", domain.SettingsSynthID)})
	}
	return domain.Succeeded(fmt.Sprintf("default settings written to %s", path), nil)
}

// CreatePortable produces the portable image from the system installation.
func (a *App) CreatePortable(ctx context.Context) domain.OperationResult {
	exe := a.installedExe()
	if !a.prober.Exists(exe) {
		return domain.Failed(zerr.With(domain.ErrPathNotFound, "path", exe), nil)
	}
	dir := a.cfg.PortableDir

	strategies := []domain.Strategy{
		{
			Name:    "portable-exporter",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(ctx context.Context) error {
				if err := a.launcher.Run(ctx, exe, "--portable="+dir, "--minimal"); err != nil {
					return err
				}
				// The exporter writes the flag file last; its appearance
				// means the copy is complete.
				return a.prober.WaitForPath(ctx, filepath.Join(dir, domain.ImageFlagFile), a.cfg.Timing.Settle)
			},
		},
		{
			Name:    "legacy-exporter",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(ctx context.Context) error {
				if err := a.launcher.Run(ctx, exe, "--create-portable", "--portable-path="+dir); err != nil {
					return err
				}
				return a.prober.WaitForPath(ctx, filepath.Join(dir, domain.ImageFlagFile), a.cfg.Timing.Settle)
			},
		},
		{
			Name:    "direct-copy",
			Timeout: a.cfg.Timing.StrategyTimeout,
			Run: func(_ context.Context) error {
				if err := a.writer.CopyTree(a.cfg.InstallDir, dir); err != nil {
					return err
				}
				return a.writer.WriteFile(filepath.Join(dir, domain.ImageFlagFile),
					domain.PortableMarker+"\n")
			},
		},
	}

	res := a.pipe.Run(ctx, "portable image", strategies, a.probe(func(_ context.Context) (bool, string) {
		report, err := a.validator.Validate(dir)
		if err != nil {
			return false, err.Error()
		}
		if report.OK {
			return true, ""
		}
		return false, describeReport(report)
	}))

	// Exporter strategies can leave the application running.
	a.killLingering()
	return res
}

// VerifyImage validates the image layout and reports the findings.
func (a *App) VerifyImage(_ context.Context, imagePath string) domain.OperationResult {
	report, err := a.validator.Validate(imagePath)
	if err != nil {
		return domain.Failed(zerr.Wrap(err, "validating image"), nil)
	}
	if report.OK {
		return domain.Succeeded(fmt.Sprintf("image at %s is complete", imagePath), nil)
	}
	return domain.Failed(
		zerr.With(domain.ErrVerificationFailed, "image", imagePath),
		[]string{describeReport(report)},
	)
}

// describeReport renders a failed validation into one diagnostic line.
func describeReport(r domain.ImageReport) string {
	var parts []string
	if len(r.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing members: %s", strings.Join(r.Missing, ", ")))
	}
	if !r.HasFlag {
		parts = append(parts, "portable flag file absent or unmarked")
	}
	if !r.HasAddon {
		parts = append(parts, "automation addon not installed")
	}
	if len(parts) == 0 {
		return "image incomplete"
	}
	return strings.Join(parts, "; ")
}

// TestImage launches the image and verifies functional execution: the
// process stays up and the automation endpoint answers. The launched
// process is terminated on every exit path.
func (a *App) TestImage(ctx context.Context, imagePath string) domain.OperationResult {
	exe := filepath.Join(imagePath, domain.ImageExecutable)
	if !a.prober.Exists(exe) {
		return domain.Failed(zerr.With(domain.ErrPathNotFound, "path", exe), nil)
	}

	handle, err := a.launcher.Spawn(ctx, exe, "-m")
	if err != nil {
		return domain.Failed(zerr.Wrap(err, "launching image"), nil)
	}
	defer func() {
		if err := handle.Terminate(); err != nil {
			a.log.Warn(fmt.Sprintf("could not terminate test process %d: %v", handle.PID(), err))
		}
	}()

	a.log.Info(fmt.Sprintf("image launched (pid %d), settling for %s", handle.PID(), a.cfg.Timing.Settle))
	if err := sleepCtx(ctx, a.cfg.Timing.Settle); err != nil {
		return domain.Failed(err, nil)
	}

	if err := a.awaitFunctional(ctx, handle); err != nil {
		return domain.Failed(err, nil)
	}
	return domain.Succeeded("image process running and automation endpoint reachable", nil)
}

// awaitFunctional polls the process and endpoint signals while watching for
// early process exit.
func (a *App) awaitFunctional(ctx context.Context, handle ports.ProcessHandle) error {
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if !handle.Running() {
					return zerr.With(zerr.Wrap(domain.ErrExternalProcess, "image process exited early"),
						"pid", handle.PID())
				}
			}
		}
	})

	g.Go(func() error {
		defer close(done)
		retries := a.cfg.Timing.ProbeRetries
		if retries < 1 {
			retries = 1
		}
		var lastReason string
		for i := 0; i < retries; i++ {
			if i > 0 {
				if err := sleepCtx(gctx, a.cfg.Timing.ProbeInterval); err != nil {
					return err
				}
			}
			ok, reason := a.checkFunctional(gctx)
			if ok {
				return nil
			}
			lastReason = reason
		}
		return zerr.Wrap(domain.ErrVerificationFailed, lastReason)
	})

	return g.Wait()
}

// checkFunctional is one poll of both signals: a live process with the
// expected name, and a responsive automation endpoint.
func (a *App) checkFunctional(ctx context.Context) (bool, string) {
	h, err := a.launcher.FindProcess(processName)
	if err != nil || h == nil {
		return false, "no running process matching " + processName
	}

	host := a.cfg.Automation.Host
	port := a.cfg.Automation.Port
	if a.net.TCPConnect(ctx, host, port, a.cfg.Timing.ProbeInterval) {
		return true, ""
	}
	url := fmt.Sprintf("http://%s:%d/info", host, port)
	if status, err := a.net.HTTPGet(ctx, url, a.cfg.Timing.ProbeInterval); err == nil && status == 200 {
		return true, ""
	}
	return false, fmt.Sprintf("automation endpoint %s:%d unreachable", host, port)
}

// Package archives the image into <label>.zip under the work dir and
// records the artifact with its checksum.
func (a *App) Package(_ context.Context, imagePath, label string) domain.OperationResult {
	if !a.prober.Exists(imagePath) {
		return domain.Failed(zerr.With(domain.ErrPathNotFound, "path", imagePath), nil)
	}
	if label == "" {
		label = filepath.Base(imagePath)
	}

	out := filepath.Join(a.cfg.WorkDir, label+".zip")
	if err := a.archiver.ZipDir(imagePath, out); err != nil {
		return domain.Failed(zerr.Wrap(err, "packaging image"), nil)
	}

	a.recordArtifact("portable-"+label, out)
	return domain.Succeeded(fmt.Sprintf("image packaged to %s", out), nil)
}

// recordArtifact hashes the file and stores its record. Failures are logged
// and never abort the producing operation.
func (a *App) recordArtifact(name, path string) {
	checksum, err := a.hasher.FileHash(path)
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not hash artifact %s: %v", path, err))
		return
	}
	err = a.store.Put(domain.ArtifactInfo{
		Name:      name,
		Path:      path,
		Checksum:  checksum,
		Timestamp: time.Now(),
	})
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not record artifact %s: %v", name, err))
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
