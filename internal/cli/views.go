package cli

import (
	"strconv"
	"time"

	"tripweaver-cli/internal/format"
	"tripweaver-cli/internal/itinerary"
	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/trip"
)

func boardDate(t time.Time) string {
	return t.In(time.Local).Format(itinerary.BoardDateLayout)
}

type dayRow struct {
	Index         int       `json:"index"`
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	ActivityCount int       `json:"activityCount"`
}

type dayList struct {
	TripName string   `json:"tripName"`
	Days     []dayRow `json:"days"`
}

func newDayList(s model.TripState) dayList {
	out := dayList{TripName: s.TripName, Days: []dayRow{}}
	for i, d := range s.Days {
		out.Days = append(out.Days, dayRow{Index: i, ID: d.ID, Date: d.Date, ActivityCount: len(d.Activities)})
	}
	return out
}

func (l dayList) Table() format.Table {
	t := format.Table{
		Title:   l.TripName,
		Headers: []string{"INDEX", "ID", "DATE", "ACTIVITIES"},
		Empty:   "No days yet. Add one with `tripweaver days add`.",
	}
	for _, d := range l.Days {
		t.Rows = append(t.Rows, []string{strconv.Itoa(d.Index), d.ID, boardDate(d.Date), strconv.Itoa(d.ActivityCount)})
	}
	return t
}

// dayView is a day with its activities grouped by time of day.
type dayView struct {
	Index int         `json:"index"`
	ID    string      `json:"id"`
	Date  time.Time   `json:"date"`
	Slots model.Slots `json:"slots"`
}

type tripView struct {
	TripName      string    `json:"tripName"`
	ActivityCount int       `json:"activityCount"`
	Days          []dayView `json:"days"`
}

func newTripView(s model.TripState) tripView {
	out := tripView{TripName: s.TripName, ActivityCount: s.ActivityCount(), Days: []dayView{}}
	for i, d := range s.Days {
		out.Days = append(out.Days, dayView{Index: i, ID: d.ID, Date: d.Date, Slots: model.GroupByTimeOfDay(d)})
	}
	return out
}

func (v tripView) Table() format.Table {
	t := format.Table{
		Title:   v.TripName,
		Headers: []string{"DAY", "SLOT", "ID", "ACTIVITY", "TIME", "LOCATION"},
		Empty:   "No days yet. Run `tripweaver docs welcome` to get started.",
	}
	for _, d := range v.Days {
		dayLabel := "Day " + strconv.Itoa(d.Index+1) + " · " + boardDate(d.Date)
		if d.Slots.Len() == 0 {
			t.Rows = append(t.Rows, []string{dayLabel, "", "", "(no activities)", "", ""})
			continue
		}
		for _, tod := range model.SlotOrder {
			for _, a := range d.Slots.Get(tod) {
				t.Rows = append(t.Rows, []string{dayLabel, tod.Label(), a.ID, activityTitle(a), a.Time, a.Location})
				dayLabel = ""
			}
		}
	}
	return t
}

func activityTitle(a model.Activity) string {
	if a.Emoji == "" {
		return a.Title
	}
	return a.Emoji + " " + a.Title
}

type activityRow struct {
	DayIndex int            `json:"dayIndex"`
	DayID    string         `json:"dayId"`
	Index    int            `json:"index"`
	Activity model.Activity `json:"activity"`
}

type activityList struct {
	Activities []activityRow `json:"activities"`
}

func newActivityList(s model.TripState, dayID string) activityList {
	out := activityList{Activities: []activityRow{}}
	for di, d := range s.Days {
		if dayID != "" && d.ID != dayID {
			continue
		}
		for ai, a := range d.Activities {
			out.Activities = append(out.Activities, activityRow{DayIndex: di, DayID: d.ID, Index: ai, Activity: a})
		}
	}
	return out
}

func (l activityList) Table() format.Table {
	t := format.Table{
		Headers: []string{"DAY", "INDEX", "ID", "ACTIVITY", "SLOT", "TIME", "LOCATION"},
		Empty:   "No activities.",
	}
	for _, r := range l.Activities {
		t.Rows = append(t.Rows, []string{
			r.DayID, strconv.Itoa(r.Index), r.Activity.ID, activityTitle(r.Activity),
			r.Activity.TimeOfDay.Label(), r.Activity.Time, r.Activity.Location,
		})
	}
	return t
}

// activityResult reports one activity mutation.
type activityResult struct {
	Changed  bool            `json:"changed"`
	Activity *model.Activity `json:"activity,omitempty"`
	ID       string          `json:"id,omitempty"`
}

func (r activityResult) Table() format.Table {
	t := format.Table{Headers: []string{"ID", "ACTIVITY", "SLOT", "CHANGED"}}
	id, title, slot := r.ID, "", ""
	if r.Activity != nil {
		id, title, slot = r.Activity.ID, activityTitle(*r.Activity), r.Activity.TimeOfDay.Label()
	}
	t.Rows = [][]string{{id, title, slot, strconv.FormatBool(r.Changed)}}
	return t
}

type dayResult struct {
	Changed bool       `json:"changed"`
	Day     *model.Day `json:"day,omitempty"`
	ID      string     `json:"id,omitempty"`
}

func (r dayResult) Table() format.Table {
	t := format.Table{Headers: []string{"ID", "DATE", "CHANGED"}}
	id, date := r.ID, ""
	if r.Day != nil {
		id, date = r.Day.ID, boardDate(r.Day.Date)
	}
	t.Rows = [][]string{{id, date, strconv.FormatBool(r.Changed)}}
	return t
}

type galleryView struct {
	Items []trip.GalleryItem `json:"items"`
}

func (g galleryView) Table() format.Table {
	t := format.Table{
		Title:   "Gallery",
		Headers: []string{"DAY", "ACTIVITY", "IMAGE"},
		Empty:   "No activities with images yet.",
	}
	for _, it := range g.Items {
		t.Rows = append(t.Rows, []string{
			"Day " + strconv.Itoa(it.DayIndex+1) + " · " + boardDate(it.Date),
			activityTitle(it.Activity),
			it.Activity.ImageURL,
		})
	}
	return t
}

type nameView struct {
	TripName string `json:"tripName"`
}

func (n nameView) Table() format.Table {
	return format.Table{Headers: []string{"TRIP"}, Rows: [][]string{{n.TripName}}}
}
