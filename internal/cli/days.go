package cli

import (
	"strconv"

	"tripweaver-cli/internal/reorder"

	"github.com/spf13/cobra"
)

func newDaysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "List, add, remove and reorder days",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List days in trip order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newDayList(c.Snapshot()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Append a day dated after the last one (today for an empty trip)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d := c.AddDay()
			return writeOut(cmd, app, dayResult{Changed: true, Day: &d})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <day-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a day and all of its activities",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			removed := c.RemoveDay(args[0])
			return writeOut(cmd, app, dayResult{Changed: removed, ID: args[0]})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move <from-index> <to-index>",
		Short: "Move a day to a new position (zero-based; out-of-range positions clamp)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := c.Apply(reorder.ReorderDays(from, to)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newDayList(c.Snapshot()))
		},
	})

	return cmd
}
