// Package executor applies a validated rename plan in two phases. Phase A
// parks every source that is also some other pair's destination on a unique
// temporary sibling, which breaks swaps and longer rename cycles. Phase B
// then moves each pair, resolving staged sources to their temporary
// location, in the plan's original order.
//
// A phase A failure rolls every staged file back and leaves the tree as it
// was. A phase B failure rolls back the still-staged entries but does not
// unwind moves that already committed; partial success is a possible
// terminal outcome and is reported as such.
package executor

import (
	"context"
	"fmt"

	"github.com/sdejongh/bulkmv/pkg/logging"
	"github.com/sdejongh/bulkmv/pkg/models"
	"github.com/sdejongh/bulkmv/pkg/move"
	"github.com/sdejongh/bulkmv/pkg/pathutil"
)

// MoveFunc performs a single source to destination move
type MoveFunc func(src, dst string) error

// ProgressFunc is notified after each committed pair
type ProgressFunc func(done, total int, pair models.RenamePair)

// Executor applies rename plans. An executor is stateless between Apply
// calls; staging records live only for the duration of one call
type Executor struct {
	logger logging.Logger
	move   MoveFunc

	// OnProgress, when set, is called after every committed destination move
	OnProgress ProgressFunc
}

// New creates an executor using the standard move primitive
func New(logger logging.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Executor{
		logger: logger,
		move:   move.Move,
	}
}

// Apply executes the plan. With dryRun set it only renders the ordered
// "from -> to" preview and mutates nothing. Once the commit phase starts the
// operation runs to completion or to its first failure; there is no
// cancellation mid-apply
func (e *Executor) Apply(ctx context.Context, plan *models.Plan, dryRun bool) *models.ApplyResult {
	if dryRun {
		preview := make([]string, 0, len(plan.Pairs))
		for _, pair := range plan.Pairs {
			preview = append(preview, fmt.Sprintf("%s -> %s", pair.From, pair.To))
		}
		return &models.ApplyResult{Success: true, DryRun: true, Preview: preview}
	}

	staged := make(map[string]string, len(plan.Pairs))
	var records []models.StagingRecord

	// Phase A: park cycle members on temp siblings
	for i := range plan.Pairs {
		if !plan.NeedsStaging(i) {
			continue
		}
		pair := plan.Pairs[i]
		tmp := pathutil.TempSibling(pair.From)

		e.logger.Debug(ctx, "staging source", logging.Fields{
			"from": pair.From,
			"tmp":  tmp,
		})

		if err := e.move(pair.From, tmp); err != nil {
			rolledBack := e.rollback(ctx, records)
			e.logger.Error(ctx, "staging failed", err, logging.Fields{
				"from":        pair.From,
				"rolled_back": rolledBack,
			})
			return &models.ApplyResult{
				Failed:     &pair,
				Stage:      models.PhaseStage,
				Err:        err,
				RolledBack: rolledBack,
			}
		}
		records = append(records, models.StagingRecord{Tmp: tmp, From: pair.From})
		staged[pair.From] = tmp
	}

	// Phase B: commit destinations in plan order
	applied := make([]models.RenamePair, 0, len(plan.Pairs))
	for _, pair := range plan.Pairs {
		src := pair.From
		if tmp, ok := staged[pair.From]; ok {
			src = tmp
		}

		err := pathutil.EnsureParentDir(pair.To)
		if err == nil {
			err = e.move(src, pair.To)
		}
		if err != nil {
			remaining := stillStaged(records, staged)
			rolledBack := e.rollback(ctx, remaining)
			e.logger.Error(ctx, "commit failed", err, logging.Fields{
				"from":        pair.From,
				"to":          pair.To,
				"committed":   len(applied),
				"rolled_back": rolledBack,
			})
			failed := pair
			return &models.ApplyResult{
				Applied:    applied,
				Failed:     &failed,
				Stage:      models.PhaseCommit,
				Err:        err,
				RolledBack: rolledBack,
			}
		}

		delete(staged, pair.From)
		applied = append(applied, pair)
		e.logger.Info(ctx, "moved", logging.Fields{
			"from": pair.From,
			"to":   pair.To,
		})
		if e.OnProgress != nil {
			e.OnProgress(len(applied), len(plan.Pairs), pair)
		}
	}

	return &models.ApplyResult{Success: true, Applied: applied}
}

// stillStaged returns the staging records whose temp file has not yet been
// consumed by a committed move, in staging order
func stillStaged(records []models.StagingRecord, staged map[string]string) []models.StagingRecord {
	var remaining []models.StagingRecord
	for _, rec := range records {
		if _, ok := staged[rec.From]; ok {
			remaining = append(remaining, rec)
		}
	}
	return remaining
}

// rollback moves staged files back to their original paths. Individual
// rollback failures are logged and ignored; the return value reports whether
// every restore succeeded
func (e *Executor) rollback(ctx context.Context, records []models.StagingRecord) bool {
	complete := true
	for _, rec := range records {
		if err := e.move(rec.Tmp, rec.From); err != nil {
			complete = false
			e.logger.Warn(ctx, "rollback failed for staged file", logging.Fields{
				"tmp":  rec.Tmp,
				"from": rec.From,
				"err":  err.Error(),
			})
		}
	}
	return complete
}
