package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by how tada was invoked or configured.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// noArgs rejects positional arguments and unknown subcommands as usage errors.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// errReported means the command already told the user what went wrong.
var errReported = errors.New("reported")

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	if !errors.Is(err, errReported) {
		ui.Fail(stderr, err.Error())
	}
	var ue usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitError
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tada",
		Short: "Browse a remote todo list in the terminal",
		Long: `tada fetches the todos of one user from a REST backend and shows them
with an All / Active / Completed filter. Without a subcommand it opens
the interactive view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(newTUICmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCountCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// env is what every command needs after flags are parsed.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	fetcher app.Fetcher
	close   func()
}

// setup resolves configuration, styles output and opens the log.
// A missing user id is left to the caller to report.
func setup(cmd *cobra.Command) (*env, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString(config.FlagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, usageError{err}
	}
	if err := config.ApplyFlags(&cfg, fs); err != nil {
		return nil, usageError{err}
	}
	if err := cfg.Validate(); err != nil && !errors.Is(err, config.ErrNoUserID) {
		return nil, usageError{fmt.Errorf("invalid configuration: %w", err)}
	}

	ui.SetColor(!cfg.NoColor && isTerminal(cmd.OutOrStdout()))
	ui.SetTheme(cfg.Theme)

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("command", cmd.Name()))

	var f app.Fetcher
	if cfg.Source != "" {
		f, err = jsonstore.New(cfg.Source)
	} else {
		f, err = api.New(cfg.APIURL, api.WithTimeout(cfg.Timeout))
	}
	if err != nil {
		closeLog()
		return nil, usageError{err}
	}

	logger.Debug("configuration resolved",
		zap.String("config_file", cfg.File),
		zap.String("api_url", cfg.APIURL),
		zap.String("source", cfg.Source),
		zap.Int("user_id", cfg.UserID))

	return &env{cfg: cfg, log: logger, fetcher: f, close: closeLog}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// hasUser prints the missing-user hint when no id is configured.
func (e *env) hasUser(w io.Writer) bool {
	if e.cfg.UserID > 0 {
		return true
	}
	ui.Warn(w, "no user id configured")
	fmt.Fprintln(w, ui.C(ui.Current().Muted,
		"Hint: set user_id in tada.toml, export TADA_USER_ID, or pass --user-id"))
	return false
}
