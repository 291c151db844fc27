package cli

import (
	"fmt"
	"os"

	"github.com/sdejongh/bulkmv/internal/platform"
	"github.com/sdejongh/bulkmv/pkg/config"
)

// validateApplyFlags validates the apply command flags against the effective
// configuration. The stop directory is normalized in place
func validateApplyFlags(cfg *config.Config) error {
	applyFlags.StopDir = platform.NormalizePath(applyFlags.StopDir)
	if err := platform.ValidatePath(applyFlags.StopDir); err != nil {
		return fmt.Errorf("invalid stop directory: %w", err)
	}

	info, err := os.Stat(applyFlags.StopDir)
	if err != nil {
		return fmt.Errorf("failed to access stop directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("stop directory is not a directory: %s", applyFlags.StopDir)
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", cfg.Output.Format)
	}

	return nil
}

// validateListRoot checks that a listing root exists and is a directory,
// returning its normalized form
func validateListRoot(root string) (string, error) {
	root = platform.NormalizePath(root)
	if err := platform.ValidatePath(root); err != nil {
		return "", fmt.Errorf("invalid root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root is not a directory: %s", root)
	}
	return root, nil
}
