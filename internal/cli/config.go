package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sdejongh/bulkmv/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify bulkmv configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Exclude:       %s\n", strings.Join(cfg.Listing.Exclude, ", "))
			fmt.Printf("Dry Run:       %t\n", cfg.Apply.DryRun)
			fmt.Printf("Prune:         %t\n", cfg.Apply.Prune)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Progress:      %t\n", cfg.Output.Progress)
			fmt.Printf("Logging:       %t\n", cfg.Logging.Enabled)
			if cfg.Logging.Enabled {
				fmt.Printf("Log Format:    %s\n", cfg.Logging.Format)
				fmt.Printf("Log Level:     %s\n", cfg.Logging.Level)
				fmt.Printf("Log File:      %s\n", cfg.Logging.File)
			}
			if cfg.Editor != "" {
				fmt.Printf("Editor:        %s\n", cfg.Editor)
			}

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration written to %s\n", path)
			return nil
		},
	}
}
