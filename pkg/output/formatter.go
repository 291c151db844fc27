package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/bulkmv/pkg/models"
)

// Formatter defines the interface for rendering plan previews and apply
// reports. Implementations include human-readable and JSON formatters
type Formatter interface {
	// Preview renders the ordered "from -> to" lines of a plan
	Preview(pairs []models.RenamePair) error

	// Complete renders the final report of an apply
	Complete(report *models.ApplyReport) error

	// NoOp reports that the edited list contained no changes
	NoOp() error

	// Error reports an error outside the apply flow
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for the given format name writing to w
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "human":
		return NewHumanFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
