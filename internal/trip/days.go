package trip

import (
	"slices"

	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/reorder"
)

// AddDay appends an empty day dated one calendar day after the last one, or
// today when the trip has no days.
func (c *Controller) AddDay() model.Day {
	var added model.Day
	_, _ = c.update("add day", func(s *model.TripState) (bool, error) {
		date := c.clock.Now()
		if n := len(s.Days); n > 0 {
			date = s.Days[n-1].Date.AddDate(0, 0, 1)
		}
		added = model.Day{
			ID:         c.uniqueID(*s, dayIDPrefix),
			Date:       date,
			Activities: []model.Activity{},
		}
		s.Days = append(s.Days, added)
		return true, nil
	})
	c.notifier.Notify("Day added successfully", notify.KindSuccess)
	return added.Clone()
}

// RemoveDay drops the day and its activities. An unknown id changes nothing
// but the trip is still saved. Reports whether a day was removed.
func (c *Controller) RemoveDay(dayID string) bool {
	removed := false
	_, _ = c.update("remove day", func(s *model.TripState) (bool, error) {
		if i := s.DayIndex(dayID); i >= 0 {
			s.Days = slices.Delete(s.Days, i, i+1)
			removed = true
		}
		return true, nil
	})
	if removed {
		c.notifier.Notify("Day removed", notify.KindInfo)
	} else {
		c.log.Debug("trip: remove day: not found", "day_id", dayID)
	}
	return removed
}

// ReorderDays replaces the day sequence with newOrder, which must hold exactly
// the current days (same ids, same content) in any order.
func (c *Controller) ReorderDays(newOrder []model.Day) error {
	_, err := c.update("reorder days", func(s *model.TripState) (bool, error) {
		if !sameDays(s.Days, newOrder) {
			return false, ErrInvalidPermutation
		}
		next := make([]model.Day, 0, len(newOrder))
		for _, d := range newOrder {
			next = append(next, d.Clone())
		}
		s.Days = next
		return true, nil
	})
	if err != nil {
		return c.reject("reorder days", err)
	}
	return nil
}

// MoveDay relocates the day at from to position to. Both indices clamp.
func (c *Controller) MoveDay(from, to int) error {
	cur := c.state.Load().Days
	if len(cur) < 2 {
		return nil
	}
	return c.ReorderDays(reorder.Move(cur, from, to))
}

func sameDays(cur, next []model.Day) bool {
	if !reorder.SamePermutation(dayIDs(cur), dayIDs(next)) {
		return false
	}
	byID := make(map[string]model.Day, len(cur))
	for _, d := range cur {
		byID[d.ID] = d
	}
	for _, d := range next {
		if !sameDay(byID[d.ID], d) {
			return false
		}
	}
	return true
}

func sameDay(a, b model.Day) bool {
	return a.ID == b.ID && a.Date.Equal(b.Date) && slices.Equal(a.Activities, b.Activities)
}

func dayIDs(days []model.Day) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.ID)
	}
	return out
}
