package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/credsift/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter credsift.yaml",
		Long: `Write a credsift.yaml with the default dialect, table, and routing
settings into the target directory (current directory by default).`,
		Example: `  # Initialize in the current directory
  credsift init

  # Overwrite an existing config
  credsift init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	path := filepath.Join(dir, "credsift.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	starter := config.Config{
		Dialect:      config.DefaultDialect,
		DefaultField: config.DefaultDefaultField,
		Table:        config.DefaultTable,
		EntityColumn: config.DefaultEntityColumn,
		Format:       config.DefaultFormat,
	}
	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
