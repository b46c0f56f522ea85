// Package reorder holds the typed drag-and-drop commands handed to the trip
// controller, and the slice helpers used to realize them.
package reorder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedCommand = errors.New("malformed reorder command")
	ErrUnknownKind      = errors.New("unknown reorder kind")
)

type Kind string

const (
	KindReorderDays Kind = "reorder-days"
	KindWithinDay   Kind = "within-day"
	KindAcrossDays  Kind = "across-days"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindReorderDays, KindWithinDay, KindAcrossDays:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Command is a drop result. Containers are day ids; for KindReorderDays both
// containers are empty because the container is the day list itself.
type Command struct {
	Kind            Kind   `json:"kind"`
	SourceContainer string `json:"sourceContainer,omitempty"`
	DestContainer   string `json:"destContainer,omitempty"`
	SourceIndex     int    `json:"sourceIndex"`
	DestIndex       int    `json:"destIndex"`
}

func ReorderDays(from, to int) Command {
	return Command{Kind: KindReorderDays, SourceIndex: from, DestIndex: to}
}

func WithinDay(dayID string, from, to int) Command {
	return Command{Kind: KindWithinDay, SourceContainer: dayID, DestContainer: dayID, SourceIndex: from, DestIndex: to}
}

func AcrossDays(srcDayID, dstDayID string, from, to int) Command {
	return Command{Kind: KindAcrossDays, SourceContainer: srcDayID, DestContainer: dstDayID, SourceIndex: from, DestIndex: to}
}

// Validate checks the command's shape. Index bounds are not checked here:
// indices are clamped against the live lists when the command is applied.
func (c Command) Validate() error {
	src := strings.TrimSpace(c.SourceContainer)
	dst := strings.TrimSpace(c.DestContainer)
	switch c.Kind {
	case KindReorderDays:
		if src != "" || dst != "" {
			return fmt.Errorf("%w: reorder-days takes no containers", ErrMalformedCommand)
		}
	case KindWithinDay:
		if src == "" {
			return fmt.Errorf("%w: within-day needs a source day", ErrMalformedCommand)
		}
		if dst != "" && dst != src {
			return fmt.Errorf("%w: within-day source %q and destination %q differ", ErrMalformedCommand, src, dst)
		}
	case KindAcrossDays:
		if src == "" || dst == "" {
			return fmt.Errorf("%w: across-days needs source and destination days", ErrMalformedCommand)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
	return nil
}

// Clamp pins i into [0, n-1]; n must be > 0.
func Clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// ClampInsert pins an insertion point into [0, n]; beyond the end appends.
func ClampInsert(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Move returns a new slice with the element at from relocated to to. Both
// indices are clamped. xs itself is left untouched.
func Move[T any](xs []T, from, to int) []T {
	out := append([]T{}, xs...)
	if len(out) < 2 {
		return out
	}
	from = Clamp(from, len(out))
	moved := out[from]
	rest := append(out[:from:from], out[from+1:]...)
	to = ClampInsert(to, len(rest))
	return Insert(rest, to, moved)
}

// Remove returns a copy of xs without the element at i (clamped) and that element.
func Remove[T any](xs []T, i int) ([]T, T) {
	i = Clamp(i, len(xs))
	v := xs[i]
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	out = append(out, xs[i+1:]...)
	return out, v
}

// Insert returns a copy of xs with v placed at i (clamped insertion point).
func Insert[T any](xs []T, i int, v T) []T {
	i = ClampInsert(i, len(xs))
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, v)
	out = append(out, xs[i:]...)
	return out
}

// SamePermutation reports whether next contains exactly the ids of cur (as a
// multiset), in any order.
func SamePermutation(cur, next []string) bool {
	if len(cur) != len(next) {
		return false
	}
	counts := make(map[string]int, len(cur))
	for _, id := range cur {
		counts[id]++
	}
	for _, id := range next {
		if counts[id] == 0 {
			return false
		}
		counts[id]--
	}
	return true
}
