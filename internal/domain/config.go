package domain

import "fmt"

// Default locations used when .tsfix.yaml is absent or partial.
const (
	DefaultLogFile  = "build-errors.txt"
	DefaultTopCodes = 10
)

// ProjectConfig holds project-level configuration loaded from .tsfix.yaml.
type ProjectConfig struct {
	// LogFile is the tsc build log, relative to the project root unless
	// absolute.
	LogFile string `yaml:"log_file"    json:"log_file,omitempty"`
	// SourceRoot is the directory diagnostic file paths resolve against,
	// relative to the project root unless absolute.
	SourceRoot string `yaml:"source_root" json:"source_root,omitempty"`
	// TopCodes is how many diagnostic codes the summary breakdown shows.
	TopCodes int `yaml:"top_codes"   json:"top_codes,omitempty"`
}

// DefaultConfig returns the configuration used when no .tsfix.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		LogFile:    DefaultLogFile,
		SourceRoot: ".",
		TopCodes:   DefaultTopCodes,
	}
}

// Normalize fills zero-valued fields with defaults.
func (c ProjectConfig) Normalize() ProjectConfig {
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.SourceRoot == "" {
		c.SourceRoot = "."
	}
	if c.TopCodes == 0 {
		c.TopCodes = DefaultTopCodes
	}
	return c
}

// Validate checks the config for invalid values.
func (c ProjectConfig) Validate() error {
	if c.TopCodes < 0 {
		return fmt.Errorf("top_codes must be >= 0 (got %d)", c.TopCodes)
	}
	return nil
}
