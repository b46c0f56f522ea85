// Package clock provides time to the trip controller so tests can pin "today".
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock returns the current local wall-clock time. Local, because day
// dates are shown as calendar dates in the user's zone.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
