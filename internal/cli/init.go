package cli

import (
	"errors"

	"tripweaver-cli/internal/clock"
	"tripweaver-cli/internal/model"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool
	var empty bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the trip record (sample trip, or empty with --empty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.openPersistence()
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			// A malformed record counts as existing: --force is needed to replace it.
			if _, found, _ := p.Load(ctx); found && !force {
				return writeErr(cmd, errors.New("trip already exists (use --force to replace it)"))
			}

			var clk clock.Clock = clock.NewSystemClock()
			if app.clock != nil {
				clk = app.clock
			}
			st := model.SampleTrip(clk.Now())
			if empty {
				st = model.TripState{TripName: model.DefaultTripName, Days: []model.Day{}}
			}
			if err := p.Save(ctx, st); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("cli: trip initialized", "dir", app.Dir, "backend", app.Backend, "days", len(st.Days))
			return writeOut(cmd, app, newDayList(st))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing trip")
	cmd.Flags().BoolVar(&empty, "empty", false, "Start with no days instead of the sample trip")
	return cmd
}
