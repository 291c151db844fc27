package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/bulkmv/pkg/models"
)

// NormalizeLine trims trailing whitespace from a raw edited line.
// A line that normalizes to the empty string is rejected with a
// BlankLineError carrying the given 1-based line number
func NormalizeLine(raw string, lineNumber int) (string, error) {
	normalized := strings.TrimRight(raw, " \t\r\n")
	if normalized == "" {
		return "", &models.BlankLineError{Line: lineNumber}
	}
	return normalized, nil
}

// Parent returns the parent directory of path
func Parent(path string) string {
	return filepath.Dir(path)
}

// Absolute resolves path against the current working directory
func Absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}

// EnsureParentDir creates the parent directory of path, with any missing
// ancestors. Idempotent
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// TempSibling returns a hidden sibling path for staging path out of the way:
// <dir>/.<basename>.mv.<nonce>.tmp. The nonce combines the wall clock at
// nanosecond resolution with a random fragment, so collisions with real files
// are overwhelmingly unlikely. This is best-effort only; no guarantee holds
// against an adversarial concurrent writer
func TempSibling(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	nonce := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
	return filepath.Join(dir, fmt.Sprintf(".%s.mv.%s.tmp", base, nonce))
}

// IsTempArtifact reports whether the base name of path follows the staging
// naming convention, so listings can filter transient files left by an
// interrupted apply
func IsTempArtifact(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") &&
		strings.HasSuffix(base, ".tmp") &&
		strings.Contains(base, ".mv.")
}
