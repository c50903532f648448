package config

// Config is the optional project configuration read from .quizmaker.yml.
type Config struct {
	Version   int         `yaml:"version"`
	Defaults  Defaults    `yaml:"defaults"`
	OutputDir string      `yaml:"output_dir"`
	HistoryDB string      `yaml:"history_db"`
	Serve     ServeConfig `yaml:"serve"`
}

// Defaults seeds new forms.
type Defaults struct {
	Group int `yaml:"group"`
}

// ServeConfig configures the browser editor host.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Built-in defaults applied when neither config nor flags set a value.
const (
	DefaultGroup     = 1
	DefaultOutputDir = "."
	DefaultServeAddr = "127.0.0.1:5000"
)

// Default returns the configuration used when no file is found.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills unset fields with built-in defaults.
func Normalize(cfg *Config) {
	if cfg.Defaults.Group == 0 {
		cfg.Defaults.Group = DefaultGroup
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = DefaultServeAddr
	}
}
