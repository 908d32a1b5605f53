package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/pick/internal/config"
	"go.seanlatimer.dev/pick/internal/lists"
	"go.seanlatimer.dev/pick/internal/picker"
	"go.seanlatimer.dev/pick/internal/sources"
)

func newListsCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage named candidate lists",
	}

	cmd.AddCommand(
		newListsListCommand(opts),
		newListsShowCommand(opts),
		newListsAddCommand(opts),
		newListsSetCommand(opts),
		newListsDeleteCommand(opts),
	)
	return cmd
}

func listsPath(cmd *cobra.Command, opts *Options) (string, error) {
	cfg, err := loadConfig(opts, newLogger(opts, cmd.ErrOrStderr()))
	if err != nil {
		return "", err
	}
	return config.GetListsPath(cfg)
}

// listItems reads items from args, or from --file when given.
func listItems(cmd *cobra.Command, args []string, file string) ([]string, error) {
	srcs := []sources.Source{sources.Args(args)}
	switch file {
	case "":
	case "-":
		srcs = append(srcs, sources.Reader{R: cmd.InOrStdin()})
	default:
		srcs = append(srcs, sources.File{Path: file})
	}

	items, err := sources.Collect(srcs...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, picker.ErrEmptyCandidateList
	}
	return items, nil
}

func newListsListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List named lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := listsPath(cmd, opts)
			if err != nil {
				return err
			}
			all, err := lists.ListLists(path)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				if !opts.Quiet {
					fmt.Fprintln(cmd.OutOrStdout(), "No lists found.")
				}
				return nil
			}
			for _, list := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d items)\n", list.Name, len(list.Items))
			}
			return nil
		},
	}
}

func newListsShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the items of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := listsPath(cmd, opts)
			if err != nil {
				return err
			}
			list, found, err := lists.FindList(path, args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("list not found: %s", args[0])
			}
			for _, item := range list.Items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
}

func newListsAddCommand(opts *Options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add <name> [item...]",
		Short: "Create a list from items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := listItems(cmd, args[1:], file)
			if err != nil {
				return err
			}
			path, err := listsPath(cmd, opts)
			if err != nil {
				return err
			}
			list, err := lists.CreateList(path, args[0], items)
			if err != nil {
				return err
			}
			if !opts.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Created list %s with %d items\n", list.Name, len(list.Items))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read items from a file, one per line (- for stdin)")
	return cmd
}

func newListsSetCommand(opts *Options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set <name> [item...]",
		Short: "Replace the items of a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := listItems(cmd, args[1:], file)
			if err != nil {
				return err
			}
			path, err := listsPath(cmd, opts)
			if err != nil {
				return err
			}
			list, err := lists.UpdateList(path, args[0], items)
			if err != nil {
				return err
			}
			if !opts.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated list %s with %d items\n", list.Name, len(list.Items))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read items from a file, one per line (- for stdin)")
	return cmd
}

func newListsDeleteCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := listsPath(cmd, opts)
			if err != nil {
				return err
			}
			if err := lists.DeleteList(path, args[0]); err != nil {
				return err
			}
			if !opts.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted list %s\n", args[0])
			}
			return nil
		},
	}
}
