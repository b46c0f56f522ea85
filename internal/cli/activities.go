package cli

import (
	"errors"
	"fmt"
	"strings"

	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/reorder"

	"github.com/spf13/cobra"
)

// activityFlags are the editable activity fields shared by add and edit.
type activityFlags struct {
	title     string
	timeOfDay string
	time      string
	location  string
	notes     string
	emoji     string
	imageURL  string
}

func (f *activityFlags) register(cmd *cobra.Command, withTitle bool) {
	if withTitle {
		cmd.Flags().StringVar(&f.title, "title", "", "Title")
	}
	cmd.Flags().StringVar(&f.timeOfDay, "time-of-day", "", "morning|afternoon|evening|none")
	cmd.Flags().StringVar(&f.time, "time", "", "Free-text time, e.g. \"9:00 AM\"")
	cmd.Flags().StringVar(&f.location, "location", "", "Location")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&f.emoji, "emoji", "", "Emoji shown before the title")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "Image URL (shown in the gallery)")
}

func parseTimeOfDay(s string) (model.TimeOfDay, error) {
	tod, ok := model.ParseTimeOfDay(s)
	if !ok {
		return model.TimeOfDayNone, fmt.Errorf("invalid --time-of-day %q (want morning|afternoon|evening|none)", s)
	}
	return tod, nil
}

// patch collects only the flags that were given.
func (f *activityFlags) patch(cmd *cobra.Command) (model.ActivityPatch, error) {
	var p model.ActivityPatch
	set := func(name string, v string, dst **string) {
		if cmd.Flags().Changed(name) {
			vv := v
			*dst = &vv
		}
	}
	set("title", f.title, &p.Title)
	set("time", f.time, &p.Time)
	set("location", f.location, &p.Location)
	set("notes", f.notes, &p.Notes)
	set("emoji", f.emoji, &p.Emoji)
	set("image-url", f.imageURL, &p.ImageURL)
	if cmd.Flags().Changed("time-of-day") {
		tod, err := parseTimeOfDay(f.timeOfDay)
		if err != nil {
			return model.ActivityPatch{}, err
		}
		p.TimeOfDay = &tod
	}
	return p, nil
}

func newActivitiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity", "act"},
		Short:   "List, add, edit, remove and move activities",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [day-id]",
		Short: "List activities (optionally for one day) in list order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := c.Snapshot()
			dayID := ""
			if len(args) == 1 {
				dayID = strings.TrimSpace(args[0])
				if s.DayIndex(dayID) < 0 {
					return writeErr(cmd, errNotFound("day", dayID))
				}
			}
			return writeOut(cmd, app, newActivityList(s, dayID))
		},
	})

	cmd.AddCommand(newActivityAddCmd(app))
	cmd.AddCommand(newActivityEditCmd(app))

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <activity-id>",
		Aliases: []string{"remove"},
		Short:   "Remove an activity wherever it is",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			removed := c.RemoveActivity(args[0])
			return writeOut(cmd, app, activityResult{Changed: removed, ID: args[0]})
		},
	})

	cmd.AddCommand(newActivityMoveCmd(app))
	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var f activityFlags
	var id string

	cmd := &cobra.Command{
		Use:   "add <day-id> <title>",
		Short: "Append an activity to a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tod, err := parseTimeOfDay(f.timeOfDay)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			a, added, err := c.AddActivity(args[0], model.Activity{
				ID:        id,
				Title:     args[1],
				TimeOfDay: tod,
				Time:      f.time,
				Location:  f.location,
				Notes:     f.notes,
				Emoji:     f.emoji,
				ImageURL:  f.imageURL,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			if !added {
				return writeErr(cmd, errNotFound("day", args[0]))
			}
			return writeOut(cmd, app, activityResult{Changed: true, Activity: &a})
		},
	}

	f.register(cmd, false)
	cmd.Flags().StringVar(&id, "id", "", "Activity id (generated when empty)")
	return cmd
}

func newActivityEditCmd(app *App) *cobra.Command {
	var f activityFlags

	cmd := &cobra.Command{
		Use:   "edit <activity-id>",
		Short: "Change some fields of an activity (unset flags keep their value)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.patch(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			if p.IsEmpty() {
				return writeErr(cmd, errors.New("nothing to change (pass at least one field flag)"))
			}
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			a, found, err := c.EditActivity(args[0], p)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !found {
				return writeErr(cmd, errNotFound("activity", args[0]))
			}
			return writeOut(cmd, app, activityResult{Changed: true, Activity: &a})
		},
	}

	f.register(cmd, true)
	return cmd
}

func newActivityMoveCmd(app *App) *cobra.Command {
	var toDay string
	var index int

	cmd := &cobra.Command{
		Use:   "move <activity-id> --index <n> [--to <day-id>]",
		Short: "Move an activity within its day or into another day",
		Long: strings.TrimSpace(`
Move an activity to position --index (zero-based) of day --to, or of its own
day when --to is omitted. Positions past the end append; negative positions
insert at the front. The activity's time of day is left unchanged.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("index") {
				return writeErr(cmd, errors.New("missing --index"))
			}
			c, _, err := openTrip(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := c.Snapshot()
			di, ai, ok := s.LocateActivity(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("activity", args[0]))
			}
			src := s.Days[di].ID
			dst := strings.TrimSpace(toDay)
			if dst == "" {
				dst = src
			}
			if s.DayIndex(dst) < 0 {
				return writeErr(cmd, errNotFound("day", dst))
			}

			drop := reorder.WithinDay(src, ai, index)
			if dst != src {
				drop = reorder.AcrossDays(src, dst, ai, index)
			}
			if err := c.Apply(drop); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newActivityList(c.Snapshot(), dst))
		},
	}

	cmd.Flags().StringVar(&toDay, "to", "", "Destination day id (default: the activity's day)")
	cmd.Flags().IntVar(&index, "index", 0, "Destination position (zero-based)")
	return cmd
}
