package config

import "github.com/spf13/pflag"

// Flags holds CLI overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath string
	ScenePath  string
	Debug      bool
	LogFile    string
	Count      int
}

// Register binds the global flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.StringVarP(&f.ScenePath, "scene", "s", "", "Path to the scene file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file (rotated)")
}

// RegisterCount binds the dummy count flag to fs.
func (f *Flags) RegisterCount(fs *pflag.FlagSet) {
	fs.IntVarP(&f.Count, "count", "n", -1, "Number of dummies to append (-1 = config value)")
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.ScenePath != "" {
		cfg.Scene.Path = f.ScenePath
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Count >= 0 {
		cfg.Dummies.Count = f.Count
	}
}
