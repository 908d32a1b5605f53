package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/pick/internal/config"
	"go.seanlatimer.dev/pick/internal/picker"
	"go.seanlatimer.dev/pick/internal/tui"
)

type Options struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

var Version = "dev"

const (
	exitNoMatch      = 1
	exitNoCandidates = 2
	exitCancelled    = 130
)

// ExitError ends the process with Code. A nil Err exits without a message.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// showPicker is swapped out in tests.
var showPicker = tui.ShowPicker

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := &Options{}
	root := NewRootCommand(opts)
	return root.ExecuteContext(ctx)
}

func NewRootCommand(opts *Options) *cobra.Command {
	var src sourceFlags
	var ui uiFlags

	root := &cobra.Command{
		Use:   "pick [candidate...]",
		Short: "Pick one line from a searchable list",
		Long: "Opens a filterable popup over the candidates and prints the confirmed one.\n" +
			"Candidates come from arguments, --file, --list, --walk, --git-refs or piped stdin.\n\n" +
			"Use `pick -- <candidate>...` when a candidate shares a name with a subcommand.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts, &src, &ui, args)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file path")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "Suppress non-error output")

	src.register(root)
	ui.register(root)

	// Candidates named "completion" would otherwise print a shell script to stdout.
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newFilterCommand(opts),
		newListsCommand(opts),
		newConfigCommand(opts),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("pick %s\n", Version))

	return root
}

func runPick(cmd *cobra.Command, opts *Options, src *sourceFlags, ui *uiFlags, args []string) error {
	logger := newLogger(opts, cmd.ErrOrStderr())

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		return err
	}

	candidates, usedStdin, err := src.collect(cmd, cfg, args)
	if err != nil {
		return err
	}
	logger.Debug("collected candidates", "count", len(candidates), "stdin", usedStdin)
	if len(candidates) == 0 {
		return &ExitError{Code: exitNoCandidates, Err: picker.ErrEmptyCandidateList}
	}

	pickerOpts, err := ui.options(cmd, cfg)
	if err != nil {
		return err
	}
	pickerOpts.Output = cmd.ErrOrStderr()

	if usedStdin {
		tty, err := openTTY()
		if err != nil {
			return fmt.Errorf("open terminal for input: %w", err)
		}
		defer tty.Close()
		pickerOpts.Input = tty
	}

	label, err := showPicker(cmd.Context(), candidates, pickerOpts)
	if err != nil {
		switch {
		case errors.Is(err, tui.ErrCancelled):
			logger.Debug("selection cancelled")
			return &ExitError{Code: exitCancelled}
		case errors.Is(err, picker.ErrEmptyCandidateList):
			return &ExitError{Code: exitNoCandidates, Err: err}
		}
		return err
	}

	logger.Debug("selection confirmed", "label", label)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}

func loadConfig(opts *Options, logger *slog.Logger) (config.Config, error) {
	if opts.ConfigPath != "" {
		logger.Debug("loading config", "path", opts.ConfigPath)
		return config.LoadConfigFrom(opts.ConfigPath)
	}
	return config.LoadConfig()
}

func newLogger(opts *Options, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case opts.Verbose:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func ExitWithError(err error) {
	if err == nil {
		return
	}

	code := 1
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(code)
}
