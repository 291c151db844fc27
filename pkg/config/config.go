package config

import (
	"github.com/sdejongh/bulkmv/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Listing ListingConfig `yaml:"listing"`
	Apply   ApplyConfig   `yaml:"apply"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// Editor overrides $EDITOR for the edit command (empty = use $EDITOR)
	Editor string `yaml:"editor"`
}

// ListingConfig holds file enumeration settings
type ListingConfig struct {
	// Exclude patterns applied to every listing
	Exclude []string `yaml:"exclude"`
}

// ApplyConfig holds plan application settings
type ApplyConfig struct {
	// DryRun previews moves without touching the filesystem
	DryRun bool `yaml:"dry_run"`
	// Prune removes directories left empty by applied moves
	Prune bool `yaml:"prune"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar during apply
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Listing: ListingConfig{
			Exclude: []string{
				".git/",
				"*.tmp",
				"node_modules/",
			},
		},
		Apply: ApplyConfig{
			DryRun: false,
			Prune:  true,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "text",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.Enabled && c.Logging.File == "" {
		return &models.ValidationError{
			Field:   "logging.file",
			Message: "required when logging is enabled",
		}
	}

	return nil
}
