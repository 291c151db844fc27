package output

import (
	"encoding/json"
	"io"

	"github.com/sdejongh/bulkmv/pkg/models"
)

// JSONFormatter renders a single JSON document for automation and scripting
type JSONFormatter struct {
	writer io.Writer
}

// JSONMove represents one move in JSON output
type JSONMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// JSONFailure carries failure details in JSON output
type JSONFailure struct {
	Stage      string   `json:"stage"`
	Move       JSONMove `json:"move"`
	Reason     string   `json:"reason"`
	RolledBack bool     `json:"rolled_back"`
}

// JSONReport is the top-level JSON document for an apply
type JSONReport struct {
	OperationID string       `json:"operation_id"`
	Status      string       `json:"status"`
	DryRun      bool         `json:"dry_run"`
	DurationMs  int64        `json:"duration_ms"`
	Planned     int          `json:"planned"`
	Committed   int          `json:"committed"`
	PrunedDirs  int          `json:"pruned_dirs,omitempty"`
	Moves       []JSONMove   `json:"moves,omitempty"`
	Failure     *JSONFailure `json:"failure,omitempty"`
}

// NewJSONFormatter creates a new JSON formatter writing to w
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = io.Discard
	}
	return &JSONFormatter{writer: w}
}

// Preview renders the planned moves as a JSON array
func (f *JSONFormatter) Preview(pairs []models.RenamePair) error {
	moves := make([]JSONMove, 0, len(pairs))
	for _, pair := range pairs {
		moves = append(moves, JSONMove{From: pair.From, To: pair.To})
	}
	return f.write(map[string]interface{}{"moves": moves})
}

// Complete renders the final apply report as a single JSON document
func (f *JSONFormatter) Complete(report *models.ApplyReport) error {
	result := report.Result

	doc := JSONReport{
		OperationID: report.OperationID,
		DryRun:      result.DryRun,
		DurationMs:  report.Duration.Milliseconds(),
		Planned:     report.PlannedPairs,
		Committed:   len(result.Applied),
		PrunedDirs:  report.PrunedDirs,
	}

	switch {
	case result.DryRun:
		doc.Status = "dry-run"
	case result.Success:
		doc.Status = "success"
	default:
		doc.Status = "failed"
	}

	if result.DryRun {
		for _, pair := range report.Planned {
			doc.Moves = append(doc.Moves, JSONMove{From: pair.From, To: pair.To})
		}
	}
	for _, pair := range result.Applied {
		doc.Moves = append(doc.Moves, JSONMove{From: pair.From, To: pair.To})
	}
	if result.Failed != nil {
		doc.Failure = &JSONFailure{
			Stage:      string(result.Stage),
			Move:       JSONMove{From: result.Failed.From, To: result.Failed.To},
			Reason:     result.Err.Error(),
			RolledBack: result.RolledBack,
		}
	}

	return f.write(doc)
}

// NoOp reports that there is nothing to apply
func (f *JSONFormatter) NoOp() error {
	return f.write(map[string]string{"status": "no-op"})
}

// Error reports an error as a JSON document
func (f *JSONFormatter) Error(err error) error {
	return f.write(map[string]string{"error": err.Error()})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) write(v interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
