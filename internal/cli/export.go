package cli

import (
	"context"
	"errors"
	"strings"

	"tripweaver-cli/internal/format"
	"tripweaver-cli/internal/store"
	"tripweaver-cli/internal/trip"

	"github.com/spf13/cobra"
)

type exportResult struct {
	Path string `json:"path"`
}

func (r exportResult) Table() format.Table {
	return format.Table{Headers: []string{"EXPORTED"}, Rows: [][]string{{r.Path}}}
}

func newExportCmd(app *App) *cobra.Command {
	var dir string
	var overwrite bool
	var stdout bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the trip as a plain-text itinerary (<trip-name>-itinerary.txt)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout && watch {
				return writeErr(cmd, errors.New("--stdout and --watch cannot be combined"))
			}
			c, p, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if stdout {
				return c.ExportTo(cmd.OutOrStdout())
			}

			target := strings.TrimSpace(dir)
			if target == "" {
				target = app.Dir
			}
			path, err := c.Export(target, overwrite || watch)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !watch {
				return writeOut(cmd, app, exportResult{Path: path})
			}

			w, ok := p.(store.Watchable)
			if !ok {
				return writeErr(cmd, errors.New("--watch needs an on-disk backend (sqlite or diskv)"))
			}
			return watchExport(cmd.Context(), app, c, w, target)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default: the data directory)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing itinerary file")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the itinerary instead of writing a file")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep exporting whenever the stored trip changes")
	return cmd
}

// watchExport re-exports after every change to the stored record until ctx is
// cancelled.
func watchExport(ctx context.Context, app *App, c *trip.Controller, w store.Watchable, dir string) error {
	changes, err := store.Watch(ctx, w, app.log)
	if err != nil {
		return err
	}
	app.log.Info("cli: watching for changes", "path", w.WatchPath())
	for range changes {
		if err := c.Reload(); err != nil {
			app.log.Warn("cli: reload failed", "error", err)
			continue
		}
		if _, err := c.Export(dir, true); err != nil {
			app.log.Warn("cli: re-export failed", "error", err)
		}
	}
	return nil
}
