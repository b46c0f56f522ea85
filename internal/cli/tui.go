package cli

import (
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/store"
	"tripweaver-cli/internal/trip"
	"tripweaver-cli/internal/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// runTUI opens the board. Notifications go to the board's status line, not
// stderr, which the full-screen view owns.
func runTUI(cmd *cobra.Command, app *App) error {
	p, err := app.openPersistence()
	if err != nil {
		return writeErr(cmd, err)
	}
	ctx := cmd.Context()
	notes := &notify.Recorder{}
	c := trip.New(ctx, trip.Options{
		Persistence: p,
		Notifier:    notes,
		Clock:       app.clock,
		Logger:      app.log,
	})

	opts := tui.Options{
		ExportDir:     app.Dir,
		Notes:         notes,
		MarkdownStyle: boardMarkdownStyle(),
		StateDir:      app.Dir,
		Log:           app.log,
	}
	if w, ok := p.(store.Watchable); ok {
		changes, err := store.Watch(ctx, w, app.log)
		if err != nil {
			app.log.Warn("cli: live reload disabled", "error", err)
		} else {
			opts.Changes = changes
		}
	}
	return tui.Run(ctx, c, opts)
}

func boardMarkdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return envOr("TRIPWEAVER_MARKDOWN_STYLE", "dark")
	}
	return envOr("TRIPWEAVER_MARKDOWN_STYLE", "light")
}
