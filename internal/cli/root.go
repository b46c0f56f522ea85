package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tripweaver-cli/internal/clock"
	"tripweaver-cli/internal/config"
	"tripweaver-cli/internal/format"
	"tripweaver-cli/internal/logging"
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/store"
	"tripweaver-cli/internal/trip"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Backend    string
	Format     string
	Notify     string
	LogLevel   string
	LogFormat  string
	PrettyJSON bool

	cfg   config.Config
	log   *slog.Logger
	clock clock.Clock

	// persistence, when set, replaces the configured backend.
	persistence store.Persistence
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tripweaver",
		Short:        "Trip Weaver: plan a trip day by day (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  tripweaver

  # Scriptable commands
  tripweaver days list
  tripweaver activities add day-1 "Museum tour" --time-of-day afternoon --time "2:00 PM"

  # Write weekend-city-gateway-itinerary.txt
  tripweaver export --dir .
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive board.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.resolve(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Data directory (default: config `dir`, ~/.tripweaver)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend (sqlite|diskv|memory)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (json|table)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Notify, "notify", "", "Notifications (terminal|log|off)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", "", "Log format (text|json)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newNameCmd(app))
	cmd.AddCommand(newDaysCmd(app))
	cmd.AddCommand(newActivitiesCmd(app))
	cmd.AddCommand(newReorderCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// resolve layers flags over config (file + env) and builds the logger.
func (app *App) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg

	flags := cmd.Flags()
	pick := func(flag string, dst *string, fromCfg string) {
		if !flags.Changed(flag) || strings.TrimSpace(*dst) == "" {
			*dst = fromCfg
		}
	}
	pick("dir", &app.Dir, cfg.Dir)
	pick("backend", &app.Backend, cfg.Backend)
	pick("format", &app.Format, cfg.Format)
	pick("notify", &app.Notify, cfg.Notify)
	pick("log-level", &app.LogLevel, cfg.LogLevel)
	pick("log-format", &app.LogFormat, cfg.LogFormat)

	if flags.Changed("dir") {
		d, err := config.ExpandDir(app.Dir)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.Dir = d
	}
	if app.log == nil {
		app.log = logging.New(cmd.ErrOrStderr(), app.LogLevel, app.LogFormat)
	}
	return nil
}

func (app *App) openPersistence() (store.Persistence, error) {
	if app.persistence != nil {
		return app.persistence, nil
	}
	backend, err := store.ParseBackend(app.Backend)
	if err != nil {
		return nil, err
	}
	app.log.Debug("cli: opening store", "backend", string(backend), "dir", app.Dir)
	return store.Open(backend, app.Dir)
}

// openTrip loads the trip behind a controller wired to the configured store,
// notifier and logger.
func openTrip(cmd *cobra.Command, app *App) (*trip.Controller, store.Persistence, error) {
	p, err := app.openPersistence()
	if err != nil {
		return nil, nil, err
	}
	mode, err := notify.ParseMode(app.Notify)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c := trip.New(ctx, trip.Options{
		Persistence: p,
		Notifier:    notify.New(mode, cmd.ErrOrStderr(), app.log),
		Clock:       app.clock,
		Logger:      app.log,
	})
	return c, p, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), format.Envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
