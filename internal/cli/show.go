package cli

import (
	"fmt"

	"tripweaver-cli/internal/itinerary"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var markdown bool
	var width int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the whole trip, grouped by day and time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := c.Snapshot()
			if markdown {
				out := itinerary.Render(itinerary.RenderMarkdown(s), width, markdownStyle(cmd))
				_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}
			return writeOut(cmd, app, newTripView(s))
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the trip as a styled markdown board")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --markdown")
	return cmd
}

func newNameCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [new-name]",
		Short: "Show or change the trip name (blank resets to the default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(args) == 0 {
				return writeOut(cmd, app, nameView{TripName: c.TripName()})
			}
			return writeOut(cmd, app, nameView{TripName: c.SetTripName(args[0])})
		},
	}
	return cmd
}

func newGalleryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List activities that have images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, galleryView{Items: c.Gallery()})
		},
	}
	return cmd
}

// markdownStyle picks a glamour style: plain when output is not a terminal.
func markdownStyle(cmd *cobra.Command) string {
	if !isTerminal(cmd.OutOrStdout()) {
		return "notty"
	}
	return envOr("TRIPWEAVER_MARKDOWN_STYLE", "dark")
}
