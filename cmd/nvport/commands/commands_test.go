package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/access-ci/nvport/cmd/nvport/commands"
	"github.com/access-ci/nvport/internal/app"
	"github.com/access-ci/nvport/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// fakeApp records the last entry point invoked and returns a canned result.
type fakeApp struct {
	result domain.OperationResult

	calls     []string
	lastArg   string
	lastLabel string
	lastOpts  app.BuildOptions
	lastFetch string
}

func (f *fakeApp) record(name, arg string) domain.OperationResult {
	f.calls = append(f.calls, name)
	f.lastArg = arg
	return f.result
}

func (f *fakeApp) FetchRelease(_ context.Context, version string) domain.OperationResult {
	f.lastFetch = version
	return f.record("fetch", version)
}

func (f *fakeApp) FetchPlugin(_ context.Context) domain.OperationResult {
	return f.record("fetch-plugin", "")
}

func (f *fakeApp) Install(_ context.Context, p string) domain.OperationResult {
	return f.record("install", p)
}

func (f *fakeApp) Configure(_ context.Context) domain.OperationResult {
	return f.record("configure", "")
}

func (f *fakeApp) BuildAddon(_ context.Context, p string) domain.OperationResult {
	return f.record("build-addon", p)
}

func (f *fakeApp) InstallAddon(_ context.Context, p string) domain.OperationResult {
	return f.record("install-addon", p)
}

func (f *fakeApp) CreatePortable(_ context.Context) domain.OperationResult {
	return f.record("create-portable", "")
}

func (f *fakeApp) VerifyImage(_ context.Context, p string) domain.OperationResult {
	return f.record("verify", p)
}

func (f *fakeApp) TestImage(_ context.Context, p string) domain.OperationResult {
	return f.record("test", p)
}

func (f *fakeApp) Package(_ context.Context, p, label string) domain.OperationResult {
	f.lastLabel = label
	return f.record("package", p)
}

func (f *fakeApp) Build(_ context.Context, opts app.BuildOptions) domain.OperationResult {
	f.lastOpts = opts
	return f.record("build", "")
}

func newCLI(fake *fakeApp) (*commands.CLI, *bytes.Buffer) {
	cfg := domain.DefaultConfig()
	cfg.PortableDir = "portable"
	cli := commands.New(fake, cfg, nopLogger{})
	out := &bytes.Buffer{}
	cli.SetOutput(out)
	return cli, out
}

func execute(t *testing.T, fake *fakeApp, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cli, out := newCLI(fake)
	cli.SetArgs(args)
	return out, cli.Execute(context.Background())
}

func TestVerify_DefaultsToConfiguredPortableDir(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "verify")

	require.NoError(t, err)
	assert.Equal(t, []string{"verify"}, fake.calls)
	assert.Equal(t, "portable", fake.lastArg)
}

func TestVerify_ExplicitImageDir(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "verify", "elsewhere")

	require.NoError(t, err)
	assert.Equal(t, "elsewhere", fake.lastArg)
}

func TestInstall_RequiresInstallerArg(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "install")

	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestFetch_PassesReleaseFlag(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "fetch", "--release", "2024.4.2")

	require.NoError(t, err)
	assert.Equal(t, "2024.4.2", fake.lastFetch)
}

func TestFetchPluginCommand(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "fetch-plugin")

	require.NoError(t, err)
	assert.Equal(t, []string{"fetch-plugin"}, fake.calls)
}

func TestConfigureCommand(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "configure")

	require.NoError(t, err)
	assert.Equal(t, []string{"configure"}, fake.calls)
}

func TestBuild_PassesOptions(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "build", "-r", "2024.4.2", "--plugin-dir", "src/plugin", "--skip-test")

	require.NoError(t, err)
	assert.Equal(t, app.BuildOptions{
		Version:   "2024.4.2",
		PluginDir: "src/plugin",
		SkipTest:  true,
	}, fake.lastOpts)
}

func TestPackage_PassesLabel(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("ok", nil)}

	_, err := execute(t, fake, "package", "portable", "--label", "nvda_2024.4.2")

	require.NoError(t, err)
	assert.Equal(t, "nvda_2024.4.2", fake.lastLabel)
}

func TestFailedResult_MapsToError(t *testing.T) {
	fake := &fakeApp{result: domain.Failed(domain.ErrVerificationFailed, []string{"missing nvda.exe"})}

	_, err := execute(t, fake, "verify")

	require.ErrorIs(t, err, domain.ErrOperationFailed)
}

func TestJSONOutput_EmitsResultRecord(t *testing.T) {
	fake := &fakeApp{result: domain.Succeeded("image verified", nil)}

	out, err := execute(t, fake, "verify", "--json")

	require.NoError(t, err)
	var res domain.OperationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "image verified", res.Message)
}

func TestJSONOutput_FailureStillPrintsRecord(t *testing.T) {
	fake := &fakeApp{result: domain.Failed(domain.ErrVerificationFailed, []string{"missing nvda.exe"})}

	out, err := execute(t, fake, "verify", "--json")

	require.ErrorIs(t, err, domain.ErrOperationFailed)
	var res domain.OperationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, []string{"missing nvda.exe"}, res.Diagnostics)
}

func TestVersionCommand(t *testing.T) {
	fake := &fakeApp{}

	out, err := execute(t, fake, "version")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "nvport version")
}
