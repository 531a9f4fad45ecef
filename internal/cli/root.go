package cli

import (
	"fmt"
	"os"
	"strings"

	"callboard-cli/internal/api"
	"callboard-cli/internal/format"
	"callboard-cli/internal/store"
	"callboard-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	APIBaseURL string
	Token      string
	PrettyJSON bool
	Format     string
	Verbose    bool

	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "callboard",
		Short:        "Callboard campaign admin CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive template editor TUI
  callboard

  # Scriptable commands
  callboard templates list

  # Open a template's question script
  callboard templates show <template-id>

  # Local dashboards
  callboard dashboard
  callboard analytics --format table
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if app.Verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		log, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		app.log = log
		if app.Format == "" {
			if cfg, err := store.LoadConfig(); err == nil && cfg.DefaultOutput != "" {
				app.Format = cfg.DefaultOutput
			} else {
				app.Format = "json"
			}
		}
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.APIBaseURL, "api", envOr("CALLBOARD_API", ""), "API base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&app.Token, "token", envOr("CALLBOARD_TOKEN", ""), "Auth token (overrides the stored session)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CALLBOARD_FORMAT", ""), "Output format (json|table)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newAuthCmd(app))
	cmd.AddCommand(newTemplatesCmd(app))
	cmd.AddCommand(newCampaignsCmd(app))
	cmd.AddCommand(newDraftsCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newAnalyticsCmd(app))
	cmd.AddCommand(newUsageCmd(app))
	cmd.AddCommand(newPricingCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	client, err := newClient(app)
	if err != nil {
		return err
	}
	return tui.Run(client, app.log)
}

// newClient builds an API client from flags, the stored config, and the
// stored auth session. A missing session is fine; authed endpoints will 401.
func newClient(app *App) (*api.Client, error) {
	base := strings.TrimSpace(app.APIBaseURL)
	if base == "" {
		cfg, err := store.LoadConfig()
		if err != nil {
			return nil, err
		}
		base = cfg.BaseURL()
	}
	token := strings.TrimSpace(app.Token)
	if token == "" {
		if sess, err := store.LoadSession(); err == nil {
			token = sess.Token
		}
	}
	return api.New(api.Config{BaseURL: base, Token: token, Logger: app.log}), nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
