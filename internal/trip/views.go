package trip

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tripweaver-cli/internal/itinerary"
	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"
)

// GalleryItem is an activity with an image, plus the day it belongs to.
type GalleryItem struct {
	DayIndex int            `json:"dayIndex"`
	DayID    string         `json:"dayId"`
	Date     time.Time      `json:"date"`
	Activity model.Activity `json:"activity"`
}

// Gallery lists activities that have an image URL, in trip order.
func (c *Controller) Gallery() []GalleryItem {
	s := c.state.Load()
	out := []GalleryItem{}
	for i, d := range s.Days {
		for _, a := range d.Activities {
			if strings.TrimSpace(a.ImageURL) == "" {
				continue
			}
			out = append(out, GalleryItem{DayIndex: i, DayID: d.ID, Date: d.Date, Activity: a})
		}
	}
	return out
}

// Slots groups one day's activities by time of day. Computed on every call.
func (c *Controller) Slots(dayID string) (model.Slots, bool) {
	d, ok := c.state.Load().FindDay(dayID)
	if !ok {
		return model.Slots{}, false
	}
	return model.GroupByTimeOfDay(d), true
}

// Export writes the text itinerary into dir and returns the file path.
func (c *Controller) Export(dir string, overwrite bool) (string, error) {
	path, err := itinerary.WriteFile(dir, c.Snapshot(), overwrite)
	if err != nil {
		c.log.Error("trip: export failed", "dir", dir, "error", err)
		c.notifier.Notify("Export failed", notify.KindError)
		return "", err
	}
	c.log.Info("trip: exported", "path", path)
	c.notifier.Notify("Trip exported successfully!", notify.KindSuccess)
	return path, nil
}

// ExportTo writes the text itinerary to w.
func (c *Controller) ExportTo(w io.Writer) error {
	if _, err := io.WriteString(w, itinerary.RenderText(c.Snapshot())); err != nil {
		c.notifier.Notify("Export failed", notify.KindError)
		return fmt.Errorf("trip.ExportTo: %w", err)
	}
	c.notifier.Notify("Trip exported successfully!", notify.KindSuccess)
	return nil
}
