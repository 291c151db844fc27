// Package prune removes directories left empty after their contents were
// moved elsewhere, walking upward to a caller-supplied boundary.
package prune

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/bulkmv/pkg/models"
)

// EmptyAncestors walks upward from start toward, but never including, stop.
// Each empty directory on the way is removed; the walk ends at the first
// non-empty directory, at the boundary, at the filesystem root, or at the
// first failed removal. A start outside the boundary's subtree prunes
// nothing; climbing from it would remove directories the caller never
// designated. Returns the number of directories removed
func EmptyAncestors(start, stop string) (int, error) {
	dir := filepath.Clean(start)
	stop = filepath.Clean(stop)

	if !within(dir, stop) {
		return 0, nil
	}

	removed := 0
	for dir != stop {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root
			break
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				// Already gone, keep climbing
				dir = parent
				continue
			}
			return removed, err
		}
		if len(entries) > 0 {
			break
		}

		if err := os.Remove(dir); err != nil {
			return removed, err
		}
		removed++
		dir = parent
	}

	return removed, nil
}

// within reports whether dir lies inside stop's subtree. Both paths must be
// cleaned; dir equal to stop counts as inside
func within(dir, stop string) bool {
	rel, err := filepath.Rel(stop, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// MovedSources prunes the parent directory chain of every vacated source in
// an applied plan, once per distinct parent, bounded by stop. Pruning is a
// cleanup pass; per-directory failures end that chain without failing the
// apply, so the error total is best-effort
func MovedSources(applied []models.RenamePair, stop string) int {
	stopAbs, err := filepath.Abs(stop)
	if err != nil {
		return 0
	}

	removed := 0
	seen := make(map[string]bool, len(applied))
	for _, pair := range applied {
		parent, err := filepath.Abs(filepath.Dir(pair.From))
		if err != nil {
			continue
		}
		if seen[parent] {
			continue
		}
		seen[parent] = true

		n, _ := EmptyAncestors(parent, stopAbs)
		removed += n
	}
	return removed
}
