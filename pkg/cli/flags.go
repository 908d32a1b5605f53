package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.seanlatimer.dev/pick/internal/config"
	"go.seanlatimer.dev/pick/internal/picker"
	"go.seanlatimer.dev/pick/internal/sources"
	"go.seanlatimer.dev/pick/internal/tui"
)

type sourceFlags struct {
	files   []string
	lists   []string
	walk    string
	suffix  string
	gitRefs string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "Read candidates from a file, one per line (- for stdin)")
	cmd.Flags().StringArrayVarP(&f.lists, "list", "l", nil, "Use a named candidate list")
	cmd.Flags().StringVar(&f.walk, "walk", "", "Use file paths under a directory as candidates")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "With --walk, keep only files ending in this suffix")
	cmd.Flags().StringVar(&f.gitRefs, "git-refs", "", "Use branch and tag names of a git repository")
}

// collect gathers candidates from args and source flags. Piped stdin is read
// when nothing else was given. usedStdin reports whether stdin was consumed.
func (f *sourceFlags) collect(cmd *cobra.Command, cfg config.Config, args []string) ([]string, bool, error) {
	var srcs []sources.Source
	usedStdin := false

	if len(args) > 0 {
		srcs = append(srcs, sources.Args(args))
	}
	for _, path := range f.files {
		if path == "-" {
			srcs = append(srcs, sources.Reader{R: cmd.InOrStdin()})
			usedStdin = true
			continue
		}
		srcs = append(srcs, sources.File{Path: path})
	}
	if len(f.lists) > 0 {
		listsPath, err := config.GetListsPath(cfg)
		if err != nil {
			return nil, false, err
		}
		for _, name := range f.lists {
			srcs = append(srcs, sources.List{Path: listsPath, Name: name})
		}
	}
	if f.walk != "" {
		srcs = append(srcs, sources.Walk{Root: f.walk, Suffix: f.suffix})
	}
	if f.gitRefs != "" {
		srcs = append(srcs, sources.GitRefs{Path: f.gitRefs})
	}

	if len(srcs) == 0 && stdinPiped(cmd.InOrStdin()) {
		srcs = append(srcs, sources.Reader{R: cmd.InOrStdin()})
		usedStdin = true
	}

	candidates, err := sources.Collect(srcs...)
	if err != nil {
		return nil, false, err
	}
	return candidates, usedStdin, nil
}

type uiFlags struct {
	query     string
	match     string
	height    int
	title     string
	altScreen bool
}

func (f *uiFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Initial query")
	registerMatchFlag(cmd, &f.match)
	cmd.Flags().IntVar(&f.height, "height", 0, "Number of visible rows")
	cmd.Flags().StringVar(&f.title, "title", "", "Popup title")
	cmd.Flags().BoolVar(&f.altScreen, "alt-screen", false, "Draw the popup on the alternate screen")
}

// options merges flags over config values.
func (f *uiFlags) options(cmd *cobra.Command, cfg config.Config) (tui.Options, error) {
	mode, err := matchMode(cmd, f.match, cfg)
	if err != nil {
		return tui.Options{}, err
	}

	opts := tui.Options{
		Query:     f.query,
		Match:     mode,
		Height:    cfg.ListHeight(),
		Title:     cfg.Title,
		AltScreen: cfg.AltScreen,
	}
	if cmd.Flags().Changed("height") && f.height > 0 {
		opts.Height = f.height
	}
	if cmd.Flags().Changed("title") {
		opts.Title = f.title
	}
	if cmd.Flags().Changed("alt-screen") {
		opts.AltScreen = f.altScreen
	}
	return opts, nil
}

func registerMatchFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "match", "", "Match mode: substring or fuzzy (default substring)")
}

func matchMode(cmd *cobra.Command, flagValue string, cfg config.Config) (picker.MatchMode, error) {
	if cmd.Flags().Changed("match") {
		return picker.ParseMatchMode(flagValue)
	}
	return picker.ParseMatchMode(cfg.Match)
}

func stdinPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// openTTY opens the controlling terminal for keystrokes when stdin carried
// candidates.
var openTTY = func() (*os.File, error) {
	return os.Open("/dev/tty")
}
