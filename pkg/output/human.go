package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sdejongh/bulkmv/pkg/models"
)

var (
	arrowColor   = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// HumanFormatter renders previews and reports for a terminal
type HumanFormatter struct {
	writer io.Writer
}

// NewHumanFormatter creates a new human-readable formatter writing to w
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	if w == nil {
		w = io.Discard
	}
	return &HumanFormatter{writer: w}
}

// Preview renders the ordered move list
func (f *HumanFormatter) Preview(pairs []models.RenamePair) error {
	for _, pair := range pairs {
		fmt.Fprintf(f.writer, "%s %s %s\n", pair.From, arrowColor.Sprint("->"), pair.To)
	}
	return nil
}

// Complete renders the final apply report
func (f *HumanFormatter) Complete(report *models.ApplyReport) error {
	result := report.Result

	if result.DryRun {
		if err := f.Preview(report.Planned); err != nil {
			return err
		}
		fmt.Fprintf(f.writer, "\nDry-run: %d move(s) planned, nothing applied\n", len(report.Planned))
		return nil
	}

	if result.Success {
		fmt.Fprintf(f.writer, "%s Applied %d move(s) in %s\n",
			successColor.Sprint("✓"),
			len(result.Applied),
			report.Duration.Round(time.Millisecond))
		if report.PrunedDirs > 0 {
			fmt.Fprintf(f.writer, "  Removed %d empty director%s\n",
				report.PrunedDirs, plural(report.PrunedDirs, "y", "ies"))
		}
		return nil
	}

	fmt.Fprintf(f.writer, "%s Apply failed during %s\n", failureColor.Sprint("✗"), result.Stage)
	fmt.Fprintf(f.writer, "  Failing move:    %s %s %s\n",
		result.Failed.From, arrowColor.Sprint("->"), result.Failed.To)
	fmt.Fprintf(f.writer, "  Reason:          %v\n", result.Err)
	fmt.Fprintf(f.writer, "  Committed moves: %d of %d\n", len(result.Applied), report.PlannedPairs)
	if result.RolledBack {
		fmt.Fprintf(f.writer, "  Staged files were restored to their original paths\n")
	} else {
		fmt.Fprintf(f.writer, "  Rollback was incomplete; inspect before retrying\n")
	}
	fmt.Fprintf(f.writer, "  Committed moves were not unwound; re-list and re-edit before retrying\n")

	return nil
}

// NoOp reports that there is nothing to apply
func (f *HumanFormatter) NoOp() error {
	fmt.Fprintln(f.writer, "Nothing to apply.")
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	fmt.Fprintf(f.writer, "Error: %v\n", err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
