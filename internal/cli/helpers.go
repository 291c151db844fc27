package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sdejongh/bulkmv/pkg/config"
	"github.com/sdejongh/bulkmv/pkg/logging"
	"github.com/sdejongh/bulkmv/pkg/output"
	"github.com/sdejongh/bulkmv/pkg/pathutil"
)

// loadConfig loads the configuration from --config or the default location
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// buildLogger creates the logger described by the logging configuration.
// With logging disabled a null logger is returned; --verbose lowers the
// level to debug
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     logging.Format(cfg.Logging.Format),
		Level:      level,
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 3,
	})
}

// planRejected reports a failed plan validation. JSON consumers get a
// structured error document on stdout; the error still propagates for the
// human stderr line and the exit status
func planRejected(formatter output.Formatter, err error) error {
	if formatter.Name() == "json" {
		if writeErr := formatter.Error(err); writeErr != nil {
			return writeErr
		}
	}
	return err
}

// outputWriter returns the stream human output goes to, honoring --quiet
func outputWriter() io.Writer {
	if globalFlags.Quiet {
		return io.Discard
	}
	return os.Stdout
}

// readRawLines reads a list file into raw lines, dropping only the final
// newline so intermediate blank lines are still visible to validation
func readRawLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// readPathList reads a list file into normalized path lines. Blank lines are
// an error; a path list pairs one path to one file
func readPathList(path string) ([]string, error) {
	raw, err := readRawLines(path)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(raw))
	for i, line := range raw {
		normalized, err := pathutil.NormalizeLine(line, i+1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		paths = append(paths, normalized)
	}
	return paths, nil
}
