package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultTripName is used whenever a trip has no (or a blank) name.
const DefaultTripName = "Weekend City Gateway"

type TimeOfDay string

const (
	TimeOfDayNone      TimeOfDay = ""
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
)

// ParseTimeOfDay accepts the slot names plus the spellings front ends use for
// the unscheduled slot ("none", "unscheduled", "other", "").
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return TimeOfDayMorning, true
	case "afternoon":
		return TimeOfDayAfternoon, true
	case "evening":
		return TimeOfDayEvening, true
	case "", "none", "unscheduled", "other", "null":
		return TimeOfDayNone, true
	default:
		return TimeOfDayNone, false
	}
}

func (t TimeOfDay) String() string {
	if t == TimeOfDayNone {
		return "none"
	}
	return string(t)
}

// Label is the heading used for the slot on boards and in exports.
func (t TimeOfDay) Label() string {
	switch t {
	case TimeOfDayMorning:
		return "Morning"
	case TimeOfDayAfternoon:
		return "Afternoon"
	case TimeOfDayEvening:
		return "Evening"
	default:
		return "Other"
	}
}

// UnmarshalJSON tolerates null and unknown values (both mean unscheduled), so
// records written by older clients still load.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*t = TimeOfDayNone
		return nil
	}
	v, _ := ParseTimeOfDay(*s)
	*t = v
	return nil
}

type Activity struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	TimeOfDay TimeOfDay `json:"timeOfDay,omitempty"`
	Time      string    `json:"time,omitempty"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Emoji     string    `json:"emoji,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

type Day struct {
	ID         string     `json:"id"`
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// TripState is the whole persisted record. Days order is the canonical
// display and export order.
type TripState struct {
	TripName string `json:"tripName"`
	Days     []Day  `json:"days"`
}

// ActivityPatch carries a partial edit. Nil fields keep the current value.
type ActivityPatch struct {
	Title     *string
	TimeOfDay *TimeOfDay
	Time      *string
	Location  *string
	Notes     *string
	Emoji     *string
	ImageURL  *string
}

// Apply merges p over a and returns the fully-specified replacement. The ID
// is never touched.
func (a Activity) Apply(p ActivityPatch) Activity {
	out := a
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.TimeOfDay != nil {
		out.TimeOfDay = *p.TimeOfDay
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Emoji != nil {
		out.Emoji = *p.Emoji
	}
	if p.ImageURL != nil {
		out.ImageURL = *p.ImageURL
	}
	return out
}

func (p ActivityPatch) IsEmpty() bool {
	return p.Title == nil && p.TimeOfDay == nil && p.Time == nil && p.Location == nil &&
		p.Notes == nil && p.Emoji == nil && p.ImageURL == nil
}

func (d Day) Clone() Day {
	out := d
	out.Activities = append([]Activity{}, d.Activities...)
	return out
}

// Clone returns a deep copy; slices are never shared between snapshots.
func (s TripState) Clone() TripState {
	out := TripState{TripName: s.TripName, Days: make([]Day, 0, len(s.Days))}
	for _, d := range s.Days {
		out.Days = append(out.Days, d.Clone())
	}
	return out
}

func (s TripState) IsEmpty() bool { return len(s.Days) == 0 }

func (s TripState) ActivityCount() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Activities)
	}
	return n
}

// DayIndex returns the position of the day with the given id, or -1.
func (s TripState) DayIndex(dayID string) int {
	for i := range s.Days {
		if s.Days[i].ID == dayID {
			return i
		}
	}
	return -1
}

func (s TripState) FindDay(dayID string) (Day, bool) {
	if i := s.DayIndex(dayID); i >= 0 {
		return s.Days[i], true
	}
	return Day{}, false
}

// LocateActivity returns the (day, activity) indexes of the first activity
// with the given id.
func (s TripState) LocateActivity(activityID string) (dayIdx, actIdx int, ok bool) {
	for i := range s.Days {
		for j := range s.Days[i].Activities {
			if s.Days[i].Activities[j].ID == activityID {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func (s TripState) FindActivity(activityID string) (Activity, bool) {
	i, j, ok := s.LocateActivity(activityID)
	if !ok {
		return Activity{}, false
	}
	return s.Days[i].Activities[j], true
}

// DisplayName falls back to the placeholder for blank names.
func DisplayName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return DefaultTripName
}
