package model

// Slots is the time-of-day projection of one day's activity list. It is
// always recomputed from Day.Activities and never persisted.
type Slots struct {
	Morning     []Activity `json:"morning"`
	Afternoon   []Activity `json:"afternoon"`
	Evening     []Activity `json:"evening"`
	Unscheduled []Activity `json:"unscheduled"`
}

// SlotOrder is the display order of the four partitions.
var SlotOrder = []TimeOfDay{TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNone}

func GroupByTimeOfDay(d Day) Slots {
	s := Slots{
		Morning:     []Activity{},
		Afternoon:   []Activity{},
		Evening:     []Activity{},
		Unscheduled: []Activity{},
	}
	for _, a := range d.Activities {
		switch a.TimeOfDay {
		case TimeOfDayMorning:
			s.Morning = append(s.Morning, a)
		case TimeOfDayAfternoon:
			s.Afternoon = append(s.Afternoon, a)
		case TimeOfDayEvening:
			s.Evening = append(s.Evening, a)
		default:
			s.Unscheduled = append(s.Unscheduled, a)
		}
	}
	return s
}

func (s Slots) Get(t TimeOfDay) []Activity {
	switch t {
	case TimeOfDayMorning:
		return s.Morning
	case TimeOfDayAfternoon:
		return s.Afternoon
	case TimeOfDayEvening:
		return s.Evening
	default:
		return s.Unscheduled
	}
}

func (s Slots) Len() int {
	return len(s.Morning) + len(s.Afternoon) + len(s.Evening) + len(s.Unscheduled)
}
