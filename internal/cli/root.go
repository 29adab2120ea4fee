package cli

import (
	"fmt"
	"os"
	"strings"

	"share-cli/internal/config"
	"share-cli/internal/format"
	"share-cli/internal/location"
	"share-cli/internal/logging"
	"share-cli/internal/share"
	"share-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	ConfigPath string
	Location   string
	PrettyJSON bool
	Format     string

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "share",
		Short:        "Derive share links, embeds and badges for a published project",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive share dialog for the current repository
  share

  # Open the dialog for a specific URL (shortcut for: share dialog <url>)
  share https://ipfs.io/ipfs/Qm.../

  # Scriptable output
  share link https://x.io/p1 --hide-explorer --show-appview
  share copy markdown https://x.io/p1 --show-transactions
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialog(app, "")
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("SHARE_CONFIG", ""), "Path to config.yaml (default: ~/.share/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.Location, "location", "", "Fallback address when no URL is given (overrides config and git remote)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (json|edn|text; default from config)")

	cmd.AddCommand(newDialogCmd(app))
	cmd.AddCommand(newLinkCmd(app))
	cmd.AddCommand(newCopyCmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// load reads config and logger once per invocation.
func (app *App) load(cmd *cobra.Command) error {
	path := app.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return writeErr(cmd, fmt.Errorf("resolving config path: %w", err))
		}
		path = p
		app.ConfigPath = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return writeErr(cmd, err)
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = app.Format
	}
	if f := cmd.Flags().Lookup("pretty"); f != nil && f.Changed {
		cfg.Pretty = app.PrettyJSON
	}
	if err := cfg.Validate(); err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.log = log.With(zap.String("command", cmd.CommandPath()))
	return nil
}

func (app *App) locator() location.Resolver {
	override := app.Location
	if override == "" {
		override = app.cfg.Location
	}
	return location.Resolver{Override: override, Remote: app.cfg.Remote, Log: app.log}
}

func (app *App) newController(baseURL string, cb share.Clipboard) *share.Controller {
	return share.NewController(baseURL, share.Capabilities{
		Clipboard: cb,
		Location:  app.locator(),
	}, share.WithLogger(app.log))
}

func runDialog(app *App, baseURL string) error {
	ctl := app.newController(baseURL, clipboardFor(false))
	return tui.Run(ctl, tui.Options{Theme: app.cfg.TUI.Theme})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.cfg.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
