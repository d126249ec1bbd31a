package main

import (
	"github.com/spf13/cobra"

	"github.com/dsallow/flow/internal/editor"
	"github.com/dsallow/flow/internal/log"
	"github.com/dsallow/flow/internal/output"
	"github.com/dsallow/flow/internal/projects"
	"github.com/dsallow/flow/internal/ui/wizard/flows"
)

const noProjectsMessage = "You don't have a saved project yet."

func newTidyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tidy",
		Short:   "Manage your projects",
		GroupID: GroupTools,
		Long: `Manage a most-recently-used list of project folders.

Projects are stored one absolute path per line, most recently used first.`,
		Example: `  flow tidy add .          # Save the current folder
  flow tidy new            # Create a folder here and save it
  flow tidy open api       # Pick a project matching "api" and open it
  flow tidy open --copy    # Copy a project path instead of opening it
  flow tidy remove         # Forget a project, optionally deleting it
  flow tidy list           # Print saved projects`,
	}

	cmd.AddCommand(newTidyAddCmd())
	cmd.AddCommand(newTidyNewCmd())
	cmd.AddCommand(newTidyOpenCmd())
	cmd.AddCommand(newTidyRemoveCmd())
	cmd.AddCommand(newTidyListCmd())

	return cmd
}

func newTidyAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <path>",
		Short:   "Save an existing folder as a project",
		Aliases: []string{"a"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			path, err := projects.Canonicalize(args[0])
			if err != nil || !projects.IsDir(path) {
				out.Warnf("The path is not a folder: %s", args[0])
				return nil
			}

			store := projectStore()
			log.FromContext(ctx).Debug("saving project", "path", path, "store", store.Path())
			if err := store.UpsertFront(path); err != nil {
				return err
			}

			out.Successf("Added %s successfully", path)
			return nil
		},
	}
}

func newTidyNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a project folder in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}

			res, err := flows.NewProjectInteractive(cmd.Context(), flows.NewProjectParams{
				Store: projectStore(),
				Dir:   workDir,
			})
			if err != nil {
				return err
			}
			return res.Err
		},
	}
}

func newTidyOpenCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:     "open [query]",
		Short:   "Open a saved project in your editor",
		Aliases: []string{"o"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Open a saved project in your editor.

The optional query fuzzy-filters the projects, best match first.
The editor command comes from [editor] command in the config or FLOW_EDITOR.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			store := projectStore()
			paths, err := store.List()
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				out.Println(noProjectsMessage)
				return nil
			}

			var query string
			if len(args) == 1 {
				query = args[0]
			}
			candidates := projects.Filter(paths, query)
			if len(candidates) == 0 {
				out.Warnf("No project matches %q", query)
				return nil
			}

			if err := requireTerminal(); err != nil {
				return err
			}

			var opener editor.Opener = editor.New(cfg.Editor.Command, l)
			if copyPath {
				opener = editor.Clipboard{}
			}

			res, err := flows.OpenProjectInteractive(ctx, flows.OpenProjectParams{
				Store:    store,
				Opener:   opener,
				Projects: candidates,
			})
			if err != nil {
				return err
			}
			if res.Failed() {
				return res.Err
			}
			if !res.Cancelled && copyPath {
				l.Debug("copied project path", "path", res.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the project path to the clipboard instead of opening it")

	return cmd
}

func newTidyRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove",
		Short:   "Forget a saved project",
		Aliases: []string{"rm"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store := projectStore()
			paths, err := store.List()
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				output.FromContext(ctx).Println(noProjectsMessage)
				return nil
			}

			if err := requireTerminal(); err != nil {
				return err
			}

			res, err := flows.RemoveProjectInteractive(ctx, flows.RemoveProjectParams{
				Store:    store,
				Projects: paths,
			})
			if err != nil {
				return err
			}
			return res.Err
		},
	}
}

func newTidyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Print saved projects, most recently used first",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := projectStore().List()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Lines(paths)
			return nil
		},
	}
}
