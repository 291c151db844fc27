package models

import (
	"fmt"
	"strings"
)

// ValidationError represents an invalid configuration or flag value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// BlankLineError indicates an edited line that normalized to the empty string
type BlankLineError struct {
	// Line is the 1-based line number in the edited list
	Line int
}

func (e *BlankLineError) Error() string {
	return fmt.Sprintf("line %d is blank; every original path needs exactly one edited path", e.Line)
}

// LineCountMismatchError indicates the edited list has a different number of
// lines than the original list. Insertions and deletions are never inferred
type LineCountMismatchError struct {
	OldCount int
	NewCount int
}

func (e *LineCountMismatchError) Error() string {
	return fmt.Sprintf("line count changed from %d to %d; add or remove of paths is not supported", e.OldCount, e.NewCount)
}

// DuplicateDestinationError indicates two or more pairs share a destination.
// Paths lists every duplicated destination, not just the first
type DuplicateDestinationError struct {
	Paths []string
}

func (e *DuplicateDestinationError) Error() string {
	return fmt.Sprintf("duplicate destination(s): %s", strings.Join(e.Paths, ", "))
}

// OverwriteConflictError indicates destinations that already exist on disk and
// are not scheduled to be vacated by the same plan. Paths lists every offender
type OverwriteConflictError struct {
	Paths []string
}

func (e *OverwriteConflictError) Error() string {
	return fmt.Sprintf("destination(s) already exist: %s", strings.Join(e.Paths, ", "))
}

// MissingSourceError indicates a source path that no longer exists on disk.
// Only the first offender is reported; a missing source makes the rest of the
// plan unreliable
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("source does not exist: %s", e.Path)
}

// MoveError represents a failed move, with the reason from whichever fallback
// step failed
type MoveError struct {
	From   string
	To     string
	Reason string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s -> %s: %s", e.From, e.To, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
