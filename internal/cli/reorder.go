package cli

import (
	"fmt"
	"strconv"

	"tripweaver-cli/internal/reorder"

	"github.com/spf13/cobra"
)

// newReorderCmd exposes the raw drop commands the board produces, for scripts
// that already think in containers and indices.
func newReorderCmd(app *App) *cobra.Command {
	var srcDay, dstDay string

	cmd := &cobra.Command{
		Use:   "reorder <kind> <from-index> <to-index>",
		Short: "Apply a reorder command (reorder-days, within-day, across-days)",
		Long: `Apply a typed reorder command, the same kind the board issues when an
activity or day is dropped somewhere else.

  tripweaver reorder reorder-days 0 2
  tripweaver reorder within-day 2 0 --day day-1
  tripweaver reorder across-days 0 1 --day day-1 --to day-2

Activity indices clamp to the list bounds.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := reorder.ParseKind(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid from-index %q", args[1]))
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid to-index %q", args[2]))
			}

			rc := reorder.Command{Kind: kind, SourceIndex: from, DestIndex: to}
			switch kind {
			case reorder.KindWithinDay:
				rc.SourceContainer, rc.DestContainer = srcDay, srcDay
			case reorder.KindAcrossDays:
				rc.SourceContainer, rc.DestContainer = srcDay, dstDay
			}
			if err := rc.Validate(); err != nil {
				return writeErr(cmd, err)
			}

			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := c.Snapshot()
			for _, id := range []string{rc.SourceContainer, rc.DestContainer} {
				if id != "" && s.DayIndex(id) < 0 {
					return writeErr(cmd, errNotFound("day", id))
				}
			}
			if err := c.Apply(rc); err != nil {
				return writeErr(cmd, err)
			}
			if kind == reorder.KindReorderDays {
				return writeOut(cmd, app, newDayList(c.Snapshot()))
			}
			return writeOut(cmd, app, newTripView(c.Snapshot()))
		},
	}
	cmd.Flags().StringVar(&srcDay, "day", "", "Source day id (within-day, across-days)")
	cmd.Flags().StringVar(&dstDay, "to", "", "Destination day id (across-days)")
	return cmd
}
