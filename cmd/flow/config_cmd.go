package main

import (
	"github.com/spf13/cobra"

	"github.com/dsallow/flow/internal/config"
	"github.com/dsallow/flow/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage flow configuration.

Config file: ~/.config/flow/config.toml (override with FLOW_CONFIG)
Data files:  ~/.local/share/flow (override with data_dir or FLOW_DATA_DIR)`,
		Example: `  flow config init      # Create default config
  flow config init -f   # Overwrite existing config
  flow config path      # Show config and data file locations`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Successf("Created config at %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config and data file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.ConfigPath()
			if err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())
			out.Printf("config:   %s\n", configPath)
			out.Printf("projects: %s\n", cfg.ProjectsPath())
			out.Printf("todos:    %s\n", cfg.TodosPath())
			return nil
		},
	}
}
