package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sdejongh/bulkmv/pkg/config"
	"github.com/sdejongh/bulkmv/pkg/executor"
	"github.com/sdejongh/bulkmv/pkg/logging"
	"github.com/sdejongh/bulkmv/pkg/models"
	"github.com/sdejongh/bulkmv/pkg/output"
	"github.com/sdejongh/bulkmv/pkg/plan"
	"github.com/sdejongh/bulkmv/pkg/prune"
)

// ApplyFlags holds apply command flags
type ApplyFlags struct {
	DryRun  bool
	Prune   bool
	StopDir string
	Output  string
}

var applyFlags ApplyFlags

// NewApplyCommand creates the apply command
func NewApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <original-list> <edited-list>",
		Short: "Apply an edited path list as a batch of moves",
		Long: `Apply the edits between an original path list and its edited version as a
batch of filesystem moves. Both files hold one path per line and must have
the same number of lines; adding or removing paths is not supported.

Rename cycles (two paths swapped, or longer chains) are handled safely by
staging through hidden temporary siblings.`,
		Args: cobra.ExactArgs(2),
		RunE: runApply,
	}

	cmd.Flags().BoolVarP(&applyFlags.DryRun, "dry-run", "n", false, "preview the moves without touching the filesystem")
	cmd.Flags().BoolVar(&applyFlags.Prune, "prune", true, "remove directories left empty by the moves")
	cmd.Flags().StringVar(&applyFlags.StopDir, "stop-dir", ".", "boundary directory pruning never climbs above")
	cmd.Flags().StringVarP(&applyFlags.Output, "output", "o", "", "output format: human, json")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyApplyFlags(cmd, cfg)

	if err := validateApplyFlags(cfg); err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	original, err := readPathList(args[0])
	if err != nil {
		return err
	}
	editedRaw, err := readRawLines(args[1])
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Output.Format, outputWriter())
	if err != nil {
		return err
	}

	p, err := plan.Build(original, editedRaw)
	if err != nil {
		return planRejected(formatter, err)
	}
	if p.IsNoOp() {
		return formatter.NoOp()
	}

	return applyPlan(ctx, cfg, logger, formatter, p, applyFlags.StopDir)
}

// applyApplyFlags overrides configuration with explicitly set command flags
func applyApplyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dry-run") {
		cfg.Apply.DryRun = applyFlags.DryRun
	}
	if cmd.Flags().Changed("prune") {
		cfg.Apply.Prune = applyFlags.Prune
	}
	if applyFlags.Output != "" {
		cfg.Output.Format = applyFlags.Output
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
	}
}

// applyPlan runs the executor over a validated plan, prunes emptied source
// directories on success and renders the report. Shared by apply and edit
func applyPlan(
	ctx context.Context,
	cfg *config.Config,
	logger logging.Logger,
	formatter output.Formatter,
	p *models.Plan,
	stopDir string,
) error {
	report := &models.ApplyReport{
		OperationID:  uuid.New().String(),
		DryRun:       cfg.Apply.DryRun,
		StartTime:    time.Now(),
		PlannedPairs: len(p.Pairs),
		Planned:      p.Pairs,
	}

	logger.Info(ctx, "applying plan", logging.Fields{
		"operation_id": report.OperationID,
		"pairs":        len(p.Pairs),
		"dry_run":      cfg.Apply.DryRun,
	})

	exec := executor.New(logger)

	showBar := !cfg.Apply.DryRun &&
		formatter.Name() == "human" &&
		output.ShouldShowProgress(cfg.Output.Progress, len(p.Pairs))
	bar := output.StartProgress(os.Stderr, len(p.Pairs), showBar)
	exec.OnProgress = func(done, total int, pair models.RenamePair) {
		bar.Increment()
	}

	result := exec.Apply(ctx, p, cfg.Apply.DryRun)
	bar.Finish()

	report.Result = result
	if result.Success && !result.DryRun && cfg.Apply.Prune {
		report.PrunedDirs = prune.MovedSources(result.Applied, stopDir)
	}
	report.Finish()

	logger.Info(ctx, "apply finished", logging.Fields{
		"operation_id": report.OperationID,
		"success":      result.Success,
		"committed":    len(result.Applied),
		"pruned_dirs":  report.PrunedDirs,
	})

	if err := formatter.Complete(report); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("apply failed: %d of %d move(s) committed", len(result.Applied), report.PlannedPairs)
	}
	return nil
}
