package models

import (
	"fmt"
	"time"
)

// Phase identifies which executor phase an outcome belongs to
type Phase string

const (
	// PhaseStage is phase A: conflicting sources are parked on temp paths
	PhaseStage Phase = "stage"
	// PhaseCommit is phase B: files are moved to their final destinations
	PhaseCommit Phase = "commit"
)

// ApplyResult is the tagged outcome of one executor apply call
type ApplyResult struct {
	// Success is true when every pair was applied (or previewed in dry-run)
	Success bool

	// DryRun is true when no filesystem mutation was attempted
	DryRun bool

	// Preview holds the ordered "from -> to" lines of a dry-run
	Preview []string

	// Applied holds the pairs whose destination move completed.
	// On success this is the full plan; after a commit failure it holds the
	// pairs that committed before the failure and were not unwound
	Applied []RenamePair

	// Failed identifies the first failing pair, nil on success
	Failed *RenamePair

	// Stage indicates the phase the failure occurred in
	Stage Phase

	// Err is the underlying move error, nil on success
	Err error

	// RolledBack is true when every staged-but-uncommitted source was
	// restored to its original path after a failure
	RolledBack bool
}

// Summary returns a one-line human description of the outcome
func (r *ApplyResult) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("dry-run: %d move(s) planned, nothing applied", len(r.Preview))
	}
	if r.Success {
		return fmt.Sprintf("applied %d move(s)", len(r.Applied))
	}
	rollback := "staged files restored"
	if !r.RolledBack {
		rollback = "rollback incomplete, inspect manually"
	}
	return fmt.Sprintf("failed during %s at %s -> %s after %d committed move(s); %s",
		r.Stage, r.Failed.From, r.Failed.To, len(r.Applied), rollback)
}

// ApplyReport wraps an ApplyResult with operation identity and timing
type ApplyReport struct {
	// OperationID uniquely identifies one apply invocation
	OperationID string

	// DryRun mirrors the executor mode
	DryRun bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// PlannedPairs is the number of changed pairs in the validated plan
	PlannedPairs int

	// Planned holds the validated pairs, for rendering previews
	Planned []RenamePair

	// PrunedDirs counts directories removed by the post-apply pruning pass
	PrunedDirs int

	// Result is the executor outcome
	Result *ApplyResult
}

// Finish stamps the end time and duration
func (r *ApplyReport) Finish() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}
