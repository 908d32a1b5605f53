package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/pick/internal/config"
	"go.seanlatimer.dev/pick/internal/picker"
)

func newConfigCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved settings",
	}

	cmd.AddCommand(
		newConfigPathCommand(opts),
		newConfigShowCommand(opts),
		newConfigSetCommand(opts),
	)
	return cmd
}

// configPath is --config when given, otherwise the default location.
func configPath(opts *Options) (string, error) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, nil
	}
	return config.GetConfigPath()
}

func newConfigPathCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, newLogger(opts, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigSetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change one setting",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts, cmd.ErrOrStderr())
			cfg, err := loadConfig(opts, logger)
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if _, err := picker.ParseMatchMode(cfg.Match); err != nil {
				return err
			}

			path, err := configPath(opts)
			if err != nil {
				return err
			}
			if err := config.SaveConfigTo(path, cfg); err != nil {
				return err
			}
			logger.Debug("saved config", "path", path, "key", args[0])
			if !opts.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			}
			return nil
		},
	}
}
