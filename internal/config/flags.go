package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values leave the config as is.
type Flags struct {
	Config  string
	Debug   bool
	LogFile string
	Mode    string
	Format  string
	Full    bool
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVarP(&f.Mode, "mode", "m", "", "Parse mode: variant, aggregate or both")
	fs.StringVarP(&f.Format, "format", "f", "", "Output format: text or yaml")
	fs.BoolVar(&f.Full, "full", false, "Print every record")
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Mode != "" {
		cfg.Parse.Mode = f.Mode
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Full {
		cfg.Output.Full = true
	}
}
