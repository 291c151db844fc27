// Package plan builds a validated rename plan from an original path list and
// the user's edited lines. Validation is strictly ordered; the first failing
// check is terminal and no partial plan is ever returned, so a rejected edit
// never touches the filesystem.
package plan

import (
	"fmt"
	"os"

	"github.com/sdejongh/bulkmv/pkg/models"
	"github.com/sdejongh/bulkmv/pkg/pathutil"
)

// Build pairs each original path with its edited line and validates the
// result. Checks run in order: blank lines, line count, duplicate
// destinations (all offenders collected), overwrite conflicts (all offenders
// collected), missing sources (first offender only). A plan with zero changed
// pairs is returned as-is; callers distinguish it with Plan.IsNoOp
func Build(original []string, editedRaw []string) (*models.Plan, error) {
	edited := make([]string, 0, len(editedRaw))
	for i, raw := range editedRaw {
		line, err := pathutil.NormalizeLine(raw, i+1)
		if err != nil {
			return nil, err
		}
		edited = append(edited, line)
	}

	if len(edited) != len(original) {
		return nil, &models.LineCountMismatchError{
			OldCount: len(original),
			NewCount: len(edited),
		}
	}

	// Sources are the full original list, changed or not
	fromSet := make(map[string]bool, len(original))
	for _, from := range original {
		fromSet[from] = true
	}

	var pairs []models.RenamePair
	for i := range original {
		if original[i] != edited[i] {
			pairs = append(pairs, models.RenamePair{From: original[i], To: edited[i]})
		}
	}

	toSet := make(map[string]bool, len(pairs))
	var duplicates []string
	seenDuplicate := make(map[string]bool)
	for _, pair := range pairs {
		if toSet[pair.To] && !seenDuplicate[pair.To] {
			duplicates = append(duplicates, pair.To)
			seenDuplicate[pair.To] = true
		}
		toSet[pair.To] = true
	}
	if len(duplicates) > 0 {
		return nil, &models.DuplicateDestinationError{Paths: duplicates}
	}

	var conflicts []string
	for _, pair := range pairs {
		if fromSet[pair.To] {
			// The occupant is one of this plan's own sources, so the slot is
			// being vacated rather than overwritten
			continue
		}
		if _, err := os.Stat(pair.To); err == nil {
			conflicts = append(conflicts, pair.To)
		}
	}
	if len(conflicts) > 0 {
		return nil, &models.OverwriteConflictError{Paths: conflicts}
	}

	for _, pair := range pairs {
		if _, err := os.Stat(pair.From); err != nil {
			if os.IsNotExist(err) {
				return nil, &models.MissingSourceError{Path: pair.From}
			}
			return nil, fmt.Errorf("failed to check source %s: %w", pair.From, err)
		}
	}

	return &models.Plan{
		Pairs:   pairs,
		FromSet: fromSet,
		ToSet:   toSet,
	}, nil
}
