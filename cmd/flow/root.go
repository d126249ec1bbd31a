package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dsallow/flow/internal/config"
	"github.com/dsallow/flow/internal/log"
	"github.com/dsallow/flow/internal/output"
	"github.com/dsallow/flow/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupTools  = "tools"
	GroupConfig = "config"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flow",
		Short: "Projects and todos from the terminal",
		Long: `flow bundles two small developer-workflow tools:

  tidy  keeps a most-recently-used list of project folders and opens them
        in your editor
  todo  keeps a plain-text todo list you can check off interactively`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			// Diagnostics go to stderr, primary data to stdout.
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), verbose, quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)

			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}

			styles.Init(ctx, cfg.Theme)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs and external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupTools, Title: "Tools:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	root.AddCommand(newTidyCmd())
	root.AddCommand(newTodoCmd())

	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute builds the root command and runs it.
func Execute() {
	// On error Load still returns usable defaults with env overrides applied.
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flow: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	root.SetContext(ctx)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'flow -h' for help")
		cancel()
		os.Exit(1)
	}
}
