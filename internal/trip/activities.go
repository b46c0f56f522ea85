package trip

import (
	"fmt"
	"slices"
	"strings"

	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/reorder"
)

// AddActivity appends a to the day's list. An empty id is generated; a title
// is required. An unknown day is a no-op (added=false, nil error).
func (c *Controller) AddActivity(dayID string, a model.Activity) (model.Activity, bool, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.ID = strings.TrimSpace(a.ID)
	if a.Title == "" {
		return model.Activity{}, false, c.reject("add activity", ErrTitleRequired, "day_id", dayID)
	}

	added, err := c.update("add activity", func(s *model.TripState) (bool, error) {
		i := s.DayIndex(dayID)
		if i < 0 {
			return false, nil
		}
		if a.ID == "" {
			a.ID = c.uniqueID(*s, activityIDPrefix)
		} else if idExists(*s, a.ID) {
			return false, fmt.Errorf("%w: %q", ErrDuplicateID, a.ID)
		}
		s.Days[i].Activities = append(s.Days[i].Activities, a)
		return true, nil
	})
	if err != nil {
		return model.Activity{}, false, c.reject("add activity", err, "day_id", dayID, "activity_id", a.ID)
	}
	if !added {
		c.log.Debug("trip: add activity: day not found", "day_id", dayID)
		return model.Activity{}, false, nil
	}
	c.notifier.Notify("Activity added", notify.KindSuccess)
	return a, true, nil
}

// RemoveActivity removes the first activity with the id, wherever it is.
// Reports whether one was removed; removing twice is the same as once.
func (c *Controller) RemoveActivity(activityID string) bool {
	removed, _ := c.update("remove activity", func(s *model.TripState) (bool, error) {
		di, ai, ok := s.LocateActivity(activityID)
		if !ok {
			return false, nil
		}
		s.Days[di].Activities = slices.Delete(s.Days[di].Activities, ai, ai+1)
		return true, nil
	})
	if removed {
		c.notifier.Notify("Activity removed", notify.KindInfo)
	} else {
		c.log.Debug("trip: remove activity: not found", "activity_id", activityID)
	}
	return removed
}

// UpdateActivity replaces the activity with the given id by replacement. The
// id itself never changes. Reports whether an activity was found.
func (c *Controller) UpdateActivity(activityID string, replacement model.Activity) (bool, error) {
	replacement.Title = strings.TrimSpace(replacement.Title)
	if replacement.Title == "" {
		return false, c.reject("update activity", ErrTitleRequired, "activity_id", activityID)
	}
	replacement.ID = activityID

	updated, _ := c.update("update activity", func(s *model.TripState) (bool, error) {
		di, ai, ok := s.LocateActivity(activityID)
		if !ok {
			return false, nil
		}
		s.Days[di].Activities[ai] = replacement
		return true, nil
	})
	if updated {
		c.notifier.Notify("Activity updated", notify.KindSuccess)
	} else {
		c.log.Debug("trip: update activity: not found", "activity_id", activityID)
	}
	return updated, nil
}

// EditActivity merges patch over the current activity and stores the result.
func (c *Controller) EditActivity(activityID string, patch model.ActivityPatch) (model.Activity, bool, error) {
	cur, ok := c.state.Load().FindActivity(activityID)
	if !ok {
		return model.Activity{}, false, nil
	}
	next := cur.Apply(patch)
	updated, err := c.UpdateActivity(activityID, next)
	if err != nil || !updated {
		return model.Activity{}, updated, err
	}
	next.Title = strings.TrimSpace(next.Title)
	return next, true, nil
}

// ReorderActivitiesWithinDay replaces one day's activity list with newOrder,
// which must hold exactly the day's current activities in any order.
func (c *Controller) ReorderActivitiesWithinDay(dayIndex int, newOrder []model.Activity) error {
	_, err := c.update("reorder activities", func(s *model.TripState) (bool, error) {
		if dayIndex < 0 || dayIndex >= len(s.Days) {
			return false, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, dayIndex)
		}
		if !sameActivities(s.Days[dayIndex].Activities, newOrder) {
			return false, ErrInvalidPermutation
		}
		s.Days[dayIndex].Activities = append([]model.Activity{}, newOrder...)
		return true, nil
	})
	if err != nil {
		return c.reject("reorder activities", err, "day_index", dayIndex)
	}
	return nil
}

// MoveActivityWithinDay relocates one activity inside a day. Indices clamp.
func (c *Controller) MoveActivityWithinDay(dayIndex, from, to int) error {
	days := c.state.Load().Days
	if dayIndex < 0 || dayIndex >= len(days) {
		return c.reject("move activity", fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, dayIndex), "day_index", dayIndex)
	}
	acts := days[dayIndex].Activities
	if len(acts) < 2 {
		return nil
	}
	return c.ReorderActivitiesWithinDay(dayIndex, reorder.Move(acts, from, to))
}

// MoveActivityAcrossDays takes the activity at sourceIndex out of one day and
// inserts it at destIndex in another. Activity indices clamp (past the end
// appends); day indices must exist. The moved activity is not modified, so
// its time of day stays as it was.
func (c *Controller) MoveActivityAcrossDays(sourceDayIndex, destDayIndex, sourceIndex, destIndex int) error {
	if sourceDayIndex == destDayIndex {
		return c.MoveActivityWithinDay(sourceDayIndex, sourceIndex, destIndex)
	}
	_, err := c.update("move activity across days", func(s *model.TripState) (bool, error) {
		for _, i := range []int{sourceDayIndex, destDayIndex} {
			if i < 0 || i >= len(s.Days) {
				return false, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, i)
			}
		}
		src := s.Days[sourceDayIndex].Activities
		if len(src) == 0 {
			return false, nil
		}
		rest, moved := reorder.Remove(src, sourceIndex)
		s.Days[sourceDayIndex].Activities = rest
		s.Days[destDayIndex].Activities = reorder.Insert(s.Days[destDayIndex].Activities, destIndex, moved)
		return true, nil
	})
	if err != nil {
		return c.reject("move activity across days", err,
			"source_day_index", sourceDayIndex, "dest_day_index", destDayIndex)
	}
	return nil
}

// Apply executes a drop result. Containers are day ids.
func (c *Controller) Apply(cmd reorder.Command) error {
	if err := cmd.Validate(); err != nil {
		return c.reject("apply", err, "kind", string(cmd.Kind))
	}
	s := c.state.Load()
	switch cmd.Kind {
	case reorder.KindReorderDays:
		return c.MoveDay(cmd.SourceIndex, cmd.DestIndex)
	case reorder.KindWithinDay:
		return c.MoveActivityWithinDay(s.DayIndex(strings.TrimSpace(cmd.SourceContainer)), cmd.SourceIndex, cmd.DestIndex)
	default:
		return c.MoveActivityAcrossDays(
			s.DayIndex(strings.TrimSpace(cmd.SourceContainer)),
			s.DayIndex(strings.TrimSpace(cmd.DestContainer)),
			cmd.SourceIndex, cmd.DestIndex,
		)
	}
}

func sameActivities(cur, next []model.Activity) bool {
	if len(cur) != len(next) {
		return false
	}
	byID := make(map[string]model.Activity, len(cur))
	for _, a := range cur {
		byID[a.ID] = a
	}
	seen := make(map[string]bool, len(next))
	for _, a := range next {
		if seen[a.ID] {
			return false
		}
		seen[a.ID] = true
		if prev, ok := byID[a.ID]; !ok || prev != a {
			return false
		}
	}
	return true
}
