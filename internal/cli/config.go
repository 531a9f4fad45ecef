package cli

import (
	"errors"
	"strings"

	"callboard-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Local configuration (~/.callboard/config.json)",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"apiBaseUrl":    cfg.BaseURL(),
				"defaultOutput": cfg.DefaultOutput,
			}})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var apiBaseURL, defaultOutput string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			changed := false
			if v := strings.TrimSpace(apiBaseURL); v != "" {
				cfg.APIBaseURL = v
				changed = true
			}
			if v := strings.TrimSpace(defaultOutput); v != "" {
				if v != "json" && v != "table" {
					return writeErr(cmd, errors.New("--default-output must be json or table"))
				}
				cfg.DefaultOutput = v
				changed = true
			}
			if !changed {
				return writeErr(cmd, errors.New("nothing to set (see --help)"))
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}

	cmd.Flags().StringVar(&apiBaseURL, "api", "", "API base URL")
	cmd.Flags().StringVar(&defaultOutput, "default-output", "", "Default output format (json|table)")
	return cmd
}
