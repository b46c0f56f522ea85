// Package trip owns the in-memory trip and every mutation on it. A Controller
// holds the current snapshot, persists after each change and reports outcomes
// through a notify.Notifier. Front ends only ever read Snapshot copies.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"tripweaver-cli/internal/clock"
	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/store"
)

var (
	ErrTitleRequired      = errors.New("activity title is required")
	ErrDuplicateID        = errors.New("id already in use")
	ErrInvalidPermutation = errors.New("new order is not a permutation of the current list")
	ErrDayIndexOutOfRange = errors.New("day index out of range")
)

type Options struct {
	// Persistence defaults to an in-memory store.
	Persistence store.Persistence
	Notifier    notify.Notifier
	Clock       clock.Clock
	Logger      *slog.Logger

	// NewID generates ids for added days and activities ("day-1a2b3c4d").
	NewID func(prefix string) string
}

type Controller struct {
	ctx context.Context

	// mu serializes mutations (including their Save); state is swapped as a
	// whole so readers never block and never see a half-applied change.
	mu    sync.Mutex
	state atomic.Pointer[model.TripState]

	persist  store.Persistence
	notifier notify.Notifier
	clock    clock.Clock
	log      *slog.Logger
	newID    func(prefix string) string
}

func (o Options) withDefaults() Options {
	if o.Persistence == nil {
		o.Persistence = store.NewMemory()
	}
	if o.Notifier == nil {
		o.Notifier = notify.Discard
	}
	if o.Clock == nil {
		o.Clock = clock.NewSystemClock()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.NewID == nil {
		o.NewID = newRandomID
	}
	return o
}

// Initialize returns the persisted trip, or the sample trip when nothing has
// been saved or the saved record cannot be used. It never fails.
func Initialize(ctx context.Context, p store.Persistence, clk clock.Clock, log *slog.Logger) model.TripState {
	if clk == nil {
		clk = clock.NewSystemClock()
	}
	if log == nil {
		log = slog.Default()
	}
	if p == nil {
		return model.SampleTrip(clk.Now())
	}
	st, found, err := p.Load(ctx)
	if err != nil {
		log.Warn("trip: stored record unreadable; starting from the sample trip", "error", err)
		return model.SampleTrip(clk.Now())
	}
	if !found {
		log.Debug("trip: no stored record; starting from the sample trip")
		return model.SampleTrip(clk.Now())
	}
	st.TripName = model.DisplayName(st.TripName)
	if st.Days == nil {
		st.Days = []model.Day{}
	}
	return st
}

// New loads the trip through opts.Persistence and returns a controller over it.
func New(ctx context.Context, opts Options) *Controller {
	opts = opts.withDefaults()
	st := Initialize(ctx, opts.Persistence, opts.Clock, opts.Logger)
	return NewWithState(ctx, st, opts)
}

// NewWithState starts from st instead of loading. Nothing is saved until the
// first mutation.
func NewWithState(ctx context.Context, st model.TripState, opts Options) *Controller {
	opts = opts.withDefaults()
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Controller{
		ctx:      ctx,
		persist:  opts.Persistence,
		notifier: opts.Notifier,
		clock:    opts.Clock,
		log:      opts.Logger,
		newID:    opts.NewID,
	}
	st = st.Clone()
	st.TripName = model.DisplayName(st.TripName)
	c.state.Store(&st)
	return c
}

// Snapshot returns a deep copy of the current trip.
func (c *Controller) Snapshot() model.TripState {
	return c.state.Load().Clone()
}

func (c *Controller) IsEmpty() bool { return c.state.Load().IsEmpty() }

func (c *Controller) TripName() string { return c.state.Load().TripName }

// Reload replaces the in-memory trip with the persisted one, for changes
// made by another process. A missing or unreadable record keeps the current
// trip and is reported as an error.
func (c *Controller) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, found, err := c.persist.Load(c.ctx)
	if err != nil {
		return fmt.Errorf("trip.Reload: %w", err)
	}
	if !found {
		return errors.New("trip.Reload: no stored trip")
	}
	st.TripName = model.DisplayName(st.TripName)
	c.state.Store(&st)
	return nil
}

// Save persists the current trip as-is.
func (c *Controller) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persist.Save(c.ctx, c.state.Load().Clone())
}

// update applies fn to a private copy of the current trip. When fn asks for
// it, the copy is checked against the trip invariants, swapped in and saved.
// Save failures are logged and notified, never returned.
func (c *Controller) update(op string, fn func(s *model.TripState) (commit bool, err error)) (bool, error) {
	c.mu.Lock()
	next := c.state.Load().Clone()
	commit, err := fn(&next)
	if err == nil && commit {
		if ierr := model.CheckInvariants(next); ierr != nil {
			err = fmt.Errorf("%s: %w", op, ierr)
		}
	}
	var saveErr error
	if err == nil && commit {
		c.state.Store(&next)
		saveErr = c.persist.Save(c.ctx, next)
	}
	c.mu.Unlock()

	if err != nil {
		return false, err
	}
	if saveErr != nil {
		c.log.Error("trip: save failed", "op", op, "error", saveErr)
		c.notifier.Notify("Could not save your trip", notify.KindError)
	}
	return commit, nil
}

// reject logs a refused mutation and reports it to the user.
func (c *Controller) reject(op string, err error, attrs ...any) error {
	c.log.Warn("trip: "+op+" rejected", append([]any{"error", err}, attrs...)...)
	c.notifier.Notify(rejectMessage(err), notify.KindError)
	return err
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, ErrTitleRequired):
		return "Activity title is required"
	case errors.Is(err, ErrInvalidPermutation):
		return "Reorder rejected: the new order does not match the current list"
	case errors.Is(err, ErrDayIndexOutOfRange):
		return "Move rejected: that day does not exist"
	default:
		msg := err.Error()
		if msg == "" {
			return "Change rejected"
		}
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
}

// SetTripName renames the trip. A blank name resets to the placeholder.
func (c *Controller) SetTripName(name string) string {
	name = model.DisplayName(name)
	_, _ = c.update("set trip name", func(s *model.TripState) (bool, error) {
		s.TripName = name
		return true, nil
	})
	c.notifier.Notify("Trip name updated", notify.KindSuccess)
	return name
}
