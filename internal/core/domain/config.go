package domain

import "time"

// Config holds the effective configuration for a run. Values come from
// nvport.yaml, overlaid by NVPORT_* environment variables.
type Config struct {
	// InstallDir is where the system-level installation lives.
	InstallDir string
	// PortableDir is where the portable image is created.
	PortableDir string
	// WorkDir is the scratch directory for downloads, logs and state.
	WorkDir string
	// ReleasesURL is the base URL of the release directory listing.
	ReleasesURL string
	// PluginURL is the archive URL of the automation addon source.
	PluginURL string

	Automation AutomationConfig
	Timing     TimingConfig
}

// AutomationConfig locates the addon's automation endpoint.
type AutomationConfig struct {
	Host string
	Port int
}

// TimingConfig holds the wait budgets for external operations.
type TimingConfig struct {
	// Settle is how long a freshly launched process gets before probing.
	Settle time.Duration
	// ProbeRetries bounds the verification polling loop.
	ProbeRetries int
	// ProbeInterval spaces the verification polls.
	ProbeInterval time.Duration
	// StrategyTimeout bounds a single strategy attempt.
	StrategyTimeout time.Duration
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		InstallDir:  `C:\Program Files (x86)\NVDA`,
		PortableDir: "nvda_portable",
		WorkDir:     ".",
		ReleasesURL: "https://download.nvaccess.org/releases/",
		PluginURL:   "https://codeload.github.com/Prime-Access-Consulting/nvda-at-automation/zip/refs/heads/main",
		Automation: AutomationConfig{
			Host: "127.0.0.1",
			Port: 8765,
		},
		Timing: TimingConfig{
			Settle:          15 * time.Second,
			ProbeRetries:    10,
			ProbeInterval:   2 * time.Second,
			StrategyTimeout: 2 * time.Minute,
		},
	}
}
