package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/bulkmv/pkg/listing"
)

// ListFlags holds list command flags
type ListFlags struct {
	Root    string
	Exclude []string
}

var listFlags ListFlags

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [pattern...]",
		Short: "Print an editable list of file paths",
		Long: `Walk the root directory and print one relative file path per line.
The output is the starting point for a batch rename: save it, edit the
copy, then run apply with both files.

With patterns given, only matching files are listed. Patterns without a
path separator match file names (*.jpg); patterns with one match relative
paths (docs/*.md).`,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listFlags.Root, "root", "r", ".", "directory to enumerate")
	cmd.Flags().StringSliceVar(&listFlags.Exclude, "exclude", nil, "glob patterns to exclude (extends config)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root, err := validateListRoot(listFlags.Root)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	exclude := append(cfg.Listing.Exclude, listFlags.Exclude...)
	lister, err := listing.New(root, exclude, logger)
	if err != nil {
		return err
	}

	paths, err := lister.List(ctx, args)
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
