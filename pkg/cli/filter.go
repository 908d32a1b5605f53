package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/pick/internal/picker"
)

func newFilterCommand(opts *Options) *cobra.Command {
	var src sourceFlags
	var match string
	var first bool

	cmd := &cobra.Command{
		Use:   "filter <query> [candidate...]",
		Short: "Print the candidates matching a query without opening the popup",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts, cmd.ErrOrStderr())
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}

			query := args[0]
			candidates, _, err := src.collect(cmd, cfg, args[1:])
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return &ExitError{Code: exitNoCandidates, Err: picker.ErrEmptyCandidateList}
			}

			mode, err := matchMode(cmd, match, cfg)
			if err != nil {
				return err
			}

			sel, err := picker.New(candidates,
				picker.WithMatcher(picker.MatcherFor(mode)),
				picker.WithQuery(query),
			)
			if err != nil {
				return err
			}
			logger.Debug("filtered candidates", "query", query, "mode", mode, "matches", len(sel.FilteredIndices()))

			if first {
				label, err := sel.Confirm()
				if err != nil {
					return &ExitError{Code: exitNoMatch}
				}
				fmt.Fprintln(cmd.OutOrStdout(), label)
				return nil
			}

			matches := sel.Filtered()
			if len(matches) == 0 {
				return &ExitError{Code: exitNoMatch}
			}
			for _, label := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}

	src.register(cmd)
	registerMatchFlag(cmd, &match)
	cmd.Flags().BoolVar(&first, "first", false, "Print only the first match")
	return cmd
}
