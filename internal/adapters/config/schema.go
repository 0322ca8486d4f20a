package config

// fileSchema mirrors the nvport.yaml layout. Absent fields keep their
// defaults, so every field is a pointer or a zero-distinguishable type.
type fileSchema struct {
	InstallDir  string `yaml:"install_dir"`
	PortableDir string `yaml:"portable_dir"`
	WorkDir     string `yaml:"work_dir"`
	ReleasesURL string `yaml:"releases_url"`
	PluginURL   string `yaml:"plugin_url"`

	Automation struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"automation"`

	Timing struct {
		Settle          string `yaml:"settle"`
		ProbeRetries    int    `yaml:"probe_retries"`
		ProbeInterval   string `yaml:"probe_interval"`
		StrategyTimeout string `yaml:"strategy_timeout"`
	} `yaml:"timing"`
}
