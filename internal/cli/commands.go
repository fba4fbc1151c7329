package cli

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	// The TUI shows its own hint when the user id is missing.
	return tui.Run(cmd.Context(), e.fetcher, e.cfg.UserID, tui.Options{
		NoColor: e.cfg.NoColor || e.cfg.Theme == "mono",
		Logger:  e.log,
	})
}

func newListCmd() *cobra.Command {
	var (
		filter string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the list once and exit",
		Example: `  tada ls
  tada ls --filter active
  tada ls --filter completed --json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := model.ParseStatus(filter)
			if err != nil {
				return usageError{err}
			}
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			if !e.hasUser(cmd.ErrOrStderr()) {
				return usageError{errReported}
			}

			v, err := loadOnce(cmd, e, status)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v.Visible)
			}
			ui.RenderList(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", model.All.String(), "which todos to show: all, active, completed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the visible todos as JSON")
	return cmd
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print how many todos are left",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			if !e.hasUser(cmd.ErrOrStderr()) {
				return usageError{errReported}
			}

			v, err := loadOnce(cmd, e, model.All)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.ItemsLeft(v.ActiveCount))
			return nil
		},
	}
}

// loadOnce runs a store through one fetch and returns the resulting view.
// A failed fetch prints the same notice the TUI shows.
func loadOnce(cmd *cobra.Command, e *env, status model.Status) (app.View, error) {
	store := app.New(e.fetcher, e.cfg.UserID, app.WithLogger(e.log))
	defer store.Close()

	store.SelectFilter(status)
	store.Load(cmd.Context())

	v := store.Snapshot()
	if v.ErrorMessage != "" {
		ui.Fail(cmd.ErrOrStderr(), v.ErrorMessage)
		return v, errReported
	}
	return v, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			out := cmd.OutOrStdout()
			if e.cfg.File != "" {
				fmt.Fprintf(out, "# from %s\n", e.cfg.File)
			}
			return toml.NewEncoder(out).Encode(e.cfg)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tada", Version)
		},
	}
}
