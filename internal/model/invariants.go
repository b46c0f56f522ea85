package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvariant is wrapped by every CheckInvariants failure.
var ErrInvariant = errors.New("trip invariant violated")

// CheckInvariants verifies id uniqueness across the whole trip. An activity
// id appearing twice (in one day or in two days) breaks single ownership.
func CheckInvariants(s TripState) error {
	dayIDs := make(map[string]bool, len(s.Days))
	actIDs := map[string]string{}
	for i, d := range s.Days {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("%w: day %d has an empty id", ErrInvariant, i)
		}
		if dayIDs[d.ID] {
			return fmt.Errorf("%w: duplicate day id %q", ErrInvariant, d.ID)
		}
		dayIDs[d.ID] = true
		for _, a := range d.Activities {
			if strings.TrimSpace(a.ID) == "" {
				return fmt.Errorf("%w: activity in day %q has an empty id", ErrInvariant, d.ID)
			}
			if owner, ok := actIDs[a.ID]; ok {
				return fmt.Errorf("%w: activity %q appears in day %q and day %q", ErrInvariant, a.ID, owner, d.ID)
			}
			actIDs[a.ID] = d.ID
		}
	}
	return nil
}

// ActivityIDs lists every activity id in trip order.
func (s TripState) ActivityIDs() []string {
	out := make([]string, 0, s.ActivityCount())
	for _, d := range s.Days {
		for _, a := range d.Activities {
			out = append(out, a.ID)
		}
	}
	return out
}

func (s TripState) DayIDs() []string {
	out := make([]string, 0, len(s.Days))
	for _, d := range s.Days {
		out = append(out, d.ID)
	}
	return out
}
