// Package config handles objtool configuration loading and management.
package config

import "fmt"

// Parse modes.
const (
	ModeVariant   = "variant"
	ModeAggregate = "aggregate"
	ModeBoth      = "both"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all objtool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Parse   ParseConfig   `yaml:"parse" toml:"parse"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// ParseConfig holds parser settings.
type ParseConfig struct {
	Mode           string `yaml:"mode" toml:"mode"`                       // variant, aggregate or both
	RemainderLimit int    `yaml:"remainder_limit" toml:"remainder_limit"` // bytes of unparsed input logged, 0 = all
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"` // text or yaml
	Full   bool   `yaml:"full" toml:"full"`     // print every record, not only counts
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Parse: ParseConfig{
			Mode:           ModeBoth,
			RemainderLimit: 256,
		},
		Output: OutputConfig{
			Format: FormatText,
			Full:   false,
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Parse.Mode {
	case ModeVariant, ModeAggregate, ModeBoth:
	default:
		return fmt.Errorf("invalid parse mode %q", c.Parse.Mode)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if c.Parse.RemainderLimit < 0 {
		return fmt.Errorf("invalid remainder limit %d", c.Parse.RemainderLimit)
	}
	return nil
}
