package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdejongh/bulkmv/pkg/config"
	"github.com/sdejongh/bulkmv/pkg/listing"
	"github.com/sdejongh/bulkmv/pkg/output"
	"github.com/sdejongh/bulkmv/pkg/plan"
)

// EditFlags holds edit command flags
type EditFlags struct {
	Root    string
	Exclude []string
	DryRun  bool
	Prune   bool
	Output  string
}

var editFlags EditFlags

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [pattern...]",
		Short: "Edit file paths in $EDITOR and apply the renames",
		Long: `Enumerate files, open the path list in your editor, and apply the edits
as a batch of moves when the editor exits. Every line must stay paired to
its original file; change paths, never the number of lines.`,
		RunE: runEdit,
	}

	cmd.Flags().StringVarP(&editFlags.Root, "root", "r", ".", "directory to enumerate")
	cmd.Flags().StringSliceVar(&editFlags.Exclude, "exclude", nil, "glob patterns to exclude (extends config)")
	cmd.Flags().BoolVarP(&editFlags.DryRun, "dry-run", "n", false, "preview the moves without touching the filesystem")
	cmd.Flags().BoolVar(&editFlags.Prune, "prune", true, "remove directories left empty by the moves")
	cmd.Flags().StringVarP(&editFlags.Output, "output", "o", "", "output format: human, json")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyEditFlags(cmd, cfg)

	root, err := validateListRoot(editFlags.Root)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	exclude := append(cfg.Listing.Exclude, editFlags.Exclude...)
	lister, err := listing.New(root, exclude, logger)
	if err != nil {
		return err
	}

	original, err := lister.List(ctx, args)
	if err != nil {
		return err
	}
	if len(original) == 0 {
		return fmt.Errorf("no files to edit under %s", root)
	}

	editedRaw, err := editLines(cfg, original)
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Output.Format, outputWriter())
	if err != nil {
		return err
	}

	// Paths in the buffer are relative to the listing root; apply from there
	if err := os.Chdir(lister.Root()); err != nil {
		return fmt.Errorf("failed to enter root: %w", err)
	}

	p, err := plan.Build(original, editedRaw)
	if err != nil {
		return planRejected(formatter, err)
	}
	if p.IsNoOp() {
		return formatter.NoOp()
	}

	return applyPlan(ctx, cfg, logger, formatter, p, lister.Root())
}

// applyEditFlags overrides configuration with explicitly set command flags
func applyEditFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dry-run") {
		cfg.Apply.DryRun = editFlags.DryRun
	}
	if cmd.Flags().Changed("prune") {
		cfg.Apply.Prune = editFlags.Prune
	}
	if editFlags.Output != "" {
		cfg.Output.Format = editFlags.Output
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
	}
}

// editLines writes the path list to a temp file, runs the user's editor on
// it and reads the result back as raw lines
func editLines(cfg *config.Config, paths []string) ([]string, error) {
	editor := cfg.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return nil, fmt.Errorf("no editor configured; set $EDITOR or the editor config key")
	}

	tmp, err := os.CreateTemp("", "bulkmv-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strings.Join(paths, "\n") + "\n"); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write buffer file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close buffer file: %w", err)
	}

	// Editors like "code --wait" arrive as a command line, not a bare binary
	parts := strings.Fields(editor)
	parts = append(parts, tmp.Name())
	editCmd := exec.Command(parts[0], parts[1:]...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return nil, fmt.Errorf("editor exited with error: %w", err)
	}

	return readRawLines(tmp.Name())
}
