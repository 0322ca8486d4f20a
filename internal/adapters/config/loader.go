// Package config loads the run configuration.
//
// Precedence, lowest to highest: built-in defaults, nvport.yaml in the
// working directory, NVPORT_* environment variables. A .env file in the
// working directory is loaded first so it can feed the environment layer.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
)

// FileName is the config file looked up in the working directory.
const FileName = "nvport.yaml"

// Loader implements ports.ConfigLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the configuration from cwd, applying defaults, the config
// file, and environment overrides in that order.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(cwd, ".env"))

	cfg := domain.DefaultConfig()

	if err := applyFile(cfg, filepath.Join(cwd, FileName)); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is cwd-relative
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return zerr.Wrap(err, "reading config file")
	}

	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, "parsing config file"), "path", path)
	}

	setString(&cfg.InstallDir, file.InstallDir)
	setString(&cfg.PortableDir, file.PortableDir)
	setString(&cfg.WorkDir, file.WorkDir)
	setString(&cfg.ReleasesURL, file.ReleasesURL)
	setString(&cfg.PluginURL, file.PluginURL)
	setString(&cfg.Automation.Host, file.Automation.Host)
	if file.Automation.Port != 0 {
		cfg.Automation.Port = file.Automation.Port
	}
	if file.Timing.ProbeRetries != 0 {
		cfg.Timing.ProbeRetries = file.Timing.ProbeRetries
	}
	if err := setDuration(&cfg.Timing.Settle, file.Timing.Settle); err != nil {
		return zerr.Wrap(err, "parsing timing.settle")
	}
	if err := setDuration(&cfg.Timing.ProbeInterval, file.Timing.ProbeInterval); err != nil {
		return zerr.Wrap(err, "parsing timing.probe_interval")
	}
	if err := setDuration(&cfg.Timing.StrategyTimeout, file.Timing.StrategyTimeout); err != nil {
		return zerr.Wrap(err, "parsing timing.strategy_timeout")
	}
	return nil
}

func applyEnv(cfg *domain.Config) error {
	setString(&cfg.InstallDir, os.Getenv("NVPORT_INSTALL_DIR"))
	setString(&cfg.PortableDir, os.Getenv("NVPORT_PORTABLE_DIR"))
	setString(&cfg.WorkDir, os.Getenv("NVPORT_WORK_DIR"))
	setString(&cfg.ReleasesURL, os.Getenv("NVPORT_RELEASES_URL"))
	setString(&cfg.PluginURL, os.Getenv("NVPORT_PLUGIN_URL"))
	setString(&cfg.Automation.Host, os.Getenv("NVPORT_AUTOMATION_HOST"))

	if v := os.Getenv("NVPORT_AUTOMATION_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return zerr.Wrap(err, "parsing NVPORT_AUTOMATION_PORT")
		}
		cfg.Automation.Port = port
	}
	if v := os.Getenv("NVPORT_PROBE_RETRIES"); v != "" {
		retries, err := strconv.Atoi(v)
		if err != nil {
			return zerr.Wrap(err, "parsing NVPORT_PROBE_RETRIES")
		}
		cfg.Timing.ProbeRetries = retries
	}
	if err := setDuration(&cfg.Timing.Settle, os.Getenv("NVPORT_SETTLE")); err != nil {
		return zerr.Wrap(err, "parsing NVPORT_SETTLE")
	}
	if err := setDuration(&cfg.Timing.ProbeInterval, os.Getenv("NVPORT_PROBE_INTERVAL")); err != nil {
		return zerr.Wrap(err, "parsing NVPORT_PROBE_INTERVAL")
	}
	if err := setDuration(&cfg.Timing.StrategyTimeout, os.Getenv("NVPORT_STRATEGY_TIMEOUT")); err != nil {
		return zerr.Wrap(err, "parsing NVPORT_STRATEGY_TIMEOUT")
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
