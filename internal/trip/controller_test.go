package trip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver-cli/internal/clock"
	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/reorder"
	"tripweaver-cli/internal/store"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	c     *Controller
	mem   *store.Memory
	notes *notify.Recorder
	logs  *bytes.Buffer
}

func sequentialIDs() func(string) string {
	var mu sync.Mutex
	n := 0
	return func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-new%d", prefix, n)
	}
}

func newHarness(t *testing.T, st model.TripState) harness {
	t.Helper()
	h := harness{mem: store.NewMemory(), notes: &notify.Recorder{}, logs: &bytes.Buffer{}}
	h.c = NewWithState(context.Background(), st, Options{
		Persistence: h.mem,
		Notifier:    h.notes,
		Clock:       clock.Fixed(testNow),
		Logger:      slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		NewID:       sequentialIDs(),
	})
	return h
}

func sample() model.TripState { return model.SampleTrip(testNow) }

// twoDays is Day A [a1(morning), a2(afternoon)] and Day B [b1(evening)].
func twoDays() model.TripState {
	return model.TripState{
		TripName: "Scenario",
		Days: []model.Day{
			{ID: "A", Date: testNow, Activities: []model.Activity{
				{ID: "a1", Title: "a1", TimeOfDay: model.TimeOfDayMorning},
				{ID: "a2", Title: "a2", TimeOfDay: model.TimeOfDayAfternoon, Notes: "keep me"},
			}},
			{ID: "B", Date: testNow.AddDate(0, 0, 1), Activities: []model.Activity{
				{ID: "b1", Title: "b1", TimeOfDay: model.TimeOfDayEvening},
			}},
		},
	}
}

func activityIDs(d model.Day) []string {
	out := []string{}
	for _, a := range d.Activities {
		out = append(out, a.ID)
	}
	return out
}

func lastNote(t *testing.T, r *notify.Recorder) notify.Note {
	t.Helper()
	n, ok := r.Last()
	require.True(t, ok, "expected a notification")
	return n
}

func persisted(t *testing.T, m *store.Memory) model.TripState {
	t.Helper()
	st, found, err := m.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found, "expected a saved record")
	return st
}

func TestInitialize_LoadsSavedTrip(t *testing.T) {
	mem := store.NewMemory()
	want := twoDays()
	require.NoError(t, mem.Save(context.Background(), want))

	got := Initialize(context.Background(), mem, clock.Fixed(testNow), nil)

	assert.Equal(t, "Scenario", got.TripName)
	assert.Equal(t, []string{"a1", "a2"}, activityIDs(got.Days[0]))
}

func TestInitialize_SeedsWhenNothingSaved(t *testing.T) {
	got := Initialize(context.Background(), store.NewMemory(), clock.Fixed(testNow), nil)

	require.Len(t, got.Days, 3)
	assert.Equal(t, 9, got.ActivityCount())
	assert.Equal(t, testNow, got.Days[0].Date)
}

func TestInitialize_MalformedFallsBackToSeed(t *testing.T) {
	for _, raw := range []string{`not json`, `{"days":[{"id":"x"},{"id":"x"}]}`, `[1,2]`} {
		var logs bytes.Buffer
		log := slog.New(slog.NewTextHandler(&logs, nil))

		got := Initialize(context.Background(), store.NewMemoryWithRaw([]byte(raw)), clock.Fixed(testNow), log)

		assert.False(t, got.IsEmpty(), raw)
		assert.Equal(t, 9, got.ActivityCount(), raw)
		assert.Contains(t, logs.String(), "level=WARN", raw)
	}
}

func TestInitialize_EmptyDaysIsAnEmptyTrip(t *testing.T) {
	got := Initialize(context.Background(), store.NewMemoryWithRaw([]byte(`{"tripName":""}`)), nil, nil)

	assert.True(t, got.IsEmpty())
	assert.Equal(t, model.DefaultTripName, got.TripName)
}

func TestNew_DoesNotSaveUntilFirstMutation(t *testing.T) {
	mem := store.NewMemory()
	c := New(context.Background(), Options{Persistence: mem, Clock: clock.Fixed(testNow)})

	assert.False(t, c.IsEmpty())
	assert.Zero(t, mem.Saves())

	c.SetTripName("Road trip")
	assert.Equal(t, 1, mem.Saves())
	assert.Equal(t, "Road trip", persisted(t, mem).TripName)
}

func TestSnapshot_IsACopy(t *testing.T) {
	h := newHarness(t, sample())
	snap := h.c.Snapshot()
	snap.Days[0].Activities[0].Title = "mutated"
	snap.Days = nil

	again := h.c.Snapshot()
	assert.Len(t, again.Days, 3)
	assert.Equal(t, "Morning Coffee at Artisan Cafe", again.Days[0].Activities[0].Title)
}

func TestAddDay_OnEmptyTripIsTodayThenTomorrow(t *testing.T) {
	h := newHarness(t, model.TripState{})
	require.True(t, h.c.IsEmpty())

	first := h.c.AddDay()
	second := h.c.AddDay()

	assert.Equal(t, testNow, first.Date)
	assert.Empty(t, first.Activities)
	assert.Equal(t, testNow.AddDate(0, 0, 1), second.Date)

	snap := h.c.Snapshot()
	require.Len(t, snap.Days, 2)
	assert.Equal(t, first.ID, snap.Days[0].ID)
	assert.Equal(t, second.ID, snap.Days[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, h.c.IsEmpty())

	assert.Equal(t, notify.Note{Message: "Day added successfully", Kind: notify.KindSuccess}, lastNote(t, h.notes))
	assert.Len(t, persisted(t, h.mem).Days, 2)
}

func TestAddDay_FollowsLastDay(t *testing.T) {
	h := newHarness(t, sample())
	d := h.c.AddDay()
	assert.Equal(t, testNow.AddDate(0, 0, 3), d.Date)
}

func TestAddDay_SkipsCollidingIDs(t *testing.T) {
	h := newHarness(t, sample())
	calls := 0
	h.c.newID = func(prefix string) string {
		calls++
		if calls == 1 {
			return "day-1" // already used by the sample trip
		}
		return "day-fresh"
	}

	d := h.c.AddDay()

	assert.Equal(t, "day-fresh", d.ID)
	require.NoError(t, model.CheckInvariants(h.c.Snapshot()))
}

func TestRemoveDay_IsIdempotentAndStillPersists(t *testing.T) {
	h := newHarness(t, sample())

	assert.True(t, h.c.RemoveDay("day-2"))
	once := h.c.Snapshot()
	assert.Equal(t, notify.Note{Message: "Day removed", Kind: notify.KindInfo}, lastNote(t, h.notes))
	assert.Equal(t, 6, once.ActivityCount())

	saves := h.mem.Saves()
	assert.False(t, h.c.RemoveDay("day-2"))
	assert.Equal(t, once, h.c.Snapshot())
	assert.Equal(t, saves+1, h.mem.Saves(), "an unknown id still saves")
}

func TestReorderDays_AcceptsPermutation(t *testing.T) {
	h := newHarness(t, sample())
	cur := h.c.Snapshot().Days

	err := h.c.ReorderDays([]model.Day{cur[2], cur[0], cur[1]})

	require.NoError(t, err)
	snap := h.c.Snapshot()
	assert.Equal(t, []string{"day-3", "day-1", "day-2"}, []string{snap.Days[0].ID, snap.Days[1].ID, snap.Days[2].ID})
	assert.Equal(t, 9, snap.ActivityCount())
	assert.Equal(t, "day-3", persisted(t, h.mem).Days[0].ID)
}

func TestReorderDays_RejectsNonPermutation(t *testing.T) {
	cur := sample().Days
	changed := cur[1].Clone()
	changed.Activities = changed.Activities[:1]

	cases := map[string][]model.Day{
		"missing day":     {cur[0], cur[1]},
		"duplicated day":  {cur[0], cur[0], cur[1]},
		"foreign day":     {cur[0], cur[1], {ID: "day-x"}},
		"changed content": {cur[0], changed, cur[2]},
	}
	for name, order := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, sample())
			before := h.c.Snapshot()

			err := h.c.ReorderDays(order)

			assert.True(t, errors.Is(err, ErrInvalidPermutation), "got %v", err)
			assert.Equal(t, before, h.c.Snapshot())
			assert.Zero(t, h.mem.Saves())
			assert.Equal(t, notify.KindError, lastNote(t, h.notes).Kind)
			assert.Contains(t, h.logs.String(), "reorder days rejected")
		})
	}
}

func TestMoveDay_Clamps(t *testing.T) {
	h := newHarness(t, sample())
	require.NoError(t, h.c.MoveDay(0, 99))
	snap := h.c.Snapshot()
	assert.Equal(t, "day-1", snap.Days[2].ID)
	assert.Equal(t, "day-2", snap.Days[0].ID)
}

func TestAddActivity(t *testing.T) {
	h := newHarness(t, sample())

	a, added, err := h.c.AddActivity("day-2", model.Activity{Title: "  Night walk  ", TimeOfDay: model.TimeOfDayEvening})

	require.NoError(t, err)
	require.True(t, added)
	assert.Equal(t, "activity-new1", a.ID)
	assert.Equal(t, "Night walk", a.Title)
	d, _ := h.c.Snapshot().FindDay("day-2")
	assert.Equal(t, []string{"activity-4", "activity-5", "activity-6", "activity-new1"}, activityIDs(d))
	assert.Equal(t, notify.Note{Message: "Activity added", Kind: notify.KindSuccess}, lastNote(t, h.notes))
}

func TestAddActivity_RequiresTitle(t *testing.T) {
	h := newHarness(t, sample())
	before := h.c.Snapshot()

	_, added, err := h.c.AddActivity("day-1", model.Activity{Title: "   "})

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.False(t, added)
	assert.Equal(t, before, h.c.Snapshot())
	assert.Zero(t, h.mem.Saves())
}

func TestAddActivity_UnknownDayIsNoop(t *testing.T) {
	h := newHarness(t, sample())

	_, added, err := h.c.AddActivity("day-404", model.Activity{Title: "Lost"})

	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 9, h.c.Snapshot().ActivityCount())
	assert.Empty(t, h.notes.Notes())
}

func TestAddActivity_RejectsDuplicateID(t *testing.T) {
	h := newHarness(t, sample())

	_, _, err := h.c.AddActivity("day-3", model.Activity{ID: "activity-1", Title: "Copy"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, _, err = h.c.AddActivity("day-3", model.Activity{ID: "day-2", Title: "Shadow"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	require.NoError(t, model.CheckInvariants(h.c.Snapshot()))
}

func TestRemoveActivity_IsIdempotent(t *testing.T) {
	h := newHarness(t, sample())

	assert.True(t, h.c.RemoveActivity("activity-5"))
	once := h.c.Snapshot()
	assert.False(t, h.c.RemoveActivity("activity-5"))

	assert.Equal(t, once, h.c.Snapshot())
	assert.Equal(t, 8, once.ActivityCount())
	_, found := once.FindActivity("activity-5")
	assert.False(t, found)
	assert.Len(t, h.notes.Notes(), 1)
}

func TestUpdateActivity_ReplacesWhereverFound(t *testing.T) {
	h := newHarness(t, sample())

	ok, err := h.c.UpdateActivity("activity-8", model.Activity{ID: "ignored", Title: "Greenhouse", TimeOfDay: model.TimeOfDayMorning})

	require.NoError(t, err)
	require.True(t, ok)
	got, found := h.c.Snapshot().FindActivity("activity-8")
	require.True(t, found)
	assert.Equal(t, model.Activity{ID: "activity-8", Title: "Greenhouse", TimeOfDay: model.TimeOfDayMorning}, got)
	_, found = h.c.Snapshot().FindActivity("ignored")
	assert.False(t, found)
	assert.Equal(t, "Activity updated", lastNote(t, h.notes).Message)
}

func TestUpdateActivity_UnknownAndUntitled(t *testing.T) {
	h := newHarness(t, sample())

	ok, err := h.c.UpdateActivity("nope", model.Activity{Title: "x"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.c.UpdateActivity("activity-1", model.Activity{Title: ""})
	assert.ErrorIs(t, err, ErrTitleRequired)
	got, _ := h.c.Snapshot().FindActivity("activity-1")
	assert.Equal(t, "Morning Coffee at Artisan Cafe", got.Title)
}

func TestEditActivity_MergesPatch(t *testing.T) {
	h := newHarness(t, sample())
	loc := "Pier 9"

	got, ok, err := h.c.EditActivity("activity-3", model.ActivityPatch{Location: &loc})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Pier 9", got.Location)
	assert.Equal(t, "Sunset Dinner Cruise", got.Title)
	assert.Equal(t, model.TimeOfDayEvening, got.TimeOfDay)
}

func TestReorderActivitiesWithinDay(t *testing.T) {
	h := newHarness(t, sample())
	acts := h.c.Snapshot().Days[0].Activities

	require.NoError(t, h.c.ReorderActivitiesWithinDay(0, []model.Activity{acts[2], acts[0], acts[1]}))
	assert.Equal(t, []string{"activity-3", "activity-1", "activity-2"}, activityIDs(h.c.Snapshot().Days[0]))

	err := h.c.ReorderActivitiesWithinDay(0, []model.Activity{acts[0], acts[1]})
	assert.ErrorIs(t, err, ErrInvalidPermutation)

	edited := acts[0]
	edited.Title = "sneaky"
	err = h.c.ReorderActivitiesWithinDay(0, []model.Activity{acts[1], edited, acts[2]})
	assert.ErrorIs(t, err, ErrInvalidPermutation)

	err = h.c.ReorderActivitiesWithinDay(7, acts)
	assert.ErrorIs(t, err, ErrDayIndexOutOfRange)

	assert.Equal(t, []string{"activity-3", "activity-1", "activity-2"}, activityIDs(h.c.Snapshot().Days[0]))
}

func TestMoveActivityAcrossDays_Scenario(t *testing.T) {
	h := newHarness(t, twoDays())
	a2Before, _ := h.c.Snapshot().FindActivity("a2")

	require.NoError(t, h.c.MoveActivityAcrossDays(0, 1, 1, 0))

	snap := h.c.Snapshot()
	assert.Equal(t, []string{"a1"}, activityIDs(snap.Days[0]))
	assert.Equal(t, []string{"a2", "b1"}, activityIDs(snap.Days[1]))
	a2After, _ := snap.FindActivity("a2")
	assert.Equal(t, a2Before, a2After)
	assert.Equal(t, model.TimeOfDayAfternoon, a2After.TimeOfDay)
	assert.Equal(t, 3, snap.ActivityCount())
	assert.Equal(t, []string{"a2", "b1"}, activityIDs(persisted(t, h.mem).Days[1]))
}

func TestMoveActivityAcrossDays_ClampsActivityIndices(t *testing.T) {
	h := newHarness(t, sample())

	require.NoError(t, h.c.MoveActivityAcrossDays(0, 2, 99, 99))
	snap := h.c.Snapshot()
	assert.Equal(t, []string{"activity-1", "activity-2"}, activityIDs(snap.Days[0]))
	assert.Equal(t, []string{"activity-7", "activity-8", "activity-9", "activity-3"}, activityIDs(snap.Days[2]))

	require.NoError(t, h.c.MoveActivityAcrossDays(1, 0, -4, -1))
	snap = h.c.Snapshot()
	assert.Equal(t, []string{"activity-4", "activity-1", "activity-2"}, activityIDs(snap.Days[0]))
	assert.Equal(t, 9, snap.ActivityCount())
	require.NoError(t, model.CheckInvariants(snap))
}

func TestMoveActivityAcrossDays_EdgeCases(t *testing.T) {
	h := newHarness(t, twoDays())
	h.c.RemoveActivity("b1")
	before := h.c.Snapshot()
	saves := h.mem.Saves()

	require.NoError(t, h.c.MoveActivityAcrossDays(1, 0, 0, 0), "empty source is a no-op")
	assert.Equal(t, before, h.c.Snapshot())
	assert.Equal(t, saves, h.mem.Saves())

	err := h.c.MoveActivityAcrossDays(0, 5, 0, 0)
	assert.ErrorIs(t, err, ErrDayIndexOutOfRange)
	assert.Equal(t, before, h.c.Snapshot())

	require.NoError(t, h.c.MoveActivityAcrossDays(0, 0, 0, 1), "same day degrades to a within-day move")
	assert.Equal(t, []string{"a2", "a1"}, activityIDs(h.c.Snapshot().Days[0]))
}

func TestApply_DispatchesTypedCommands(t *testing.T) {
	h := newHarness(t, sample())

	require.NoError(t, h.c.Apply(reorder.AcrossDays("day-1", "day-2", 0, 1)))
	require.NoError(t, h.c.Apply(reorder.WithinDay("day-2", 1, 0)))
	require.NoError(t, h.c.Apply(reorder.ReorderDays(2, 0)))

	snap := h.c.Snapshot()
	assert.Equal(t, "day-3", snap.Days[0].ID)
	d2, _ := snap.FindDay("day-2")
	assert.Equal(t, []string{"activity-1", "activity-4", "activity-5", "activity-6"}, activityIDs(d2))

	err := h.c.Apply(reorder.Command{Kind: reorder.KindAcrossDays, SourceContainer: "day-1"})
	assert.ErrorIs(t, err, reorder.ErrMalformedCommand)

	err = h.c.Apply(reorder.WithinDay("day-404", 0, 1))
	assert.ErrorIs(t, err, ErrDayIndexOutOfRange)
}

func TestReorderingPreservesActivitySet(t *testing.T) {
	h := newHarness(t, sample())
	want := h.c.Snapshot().ActivityIDs()

	moves := []reorder.Command{
		reorder.AcrossDays("day-1", "day-3", 0, 0),
		reorder.AcrossDays("day-3", "day-2", 3, 1),
		reorder.WithinDay("day-2", 0, 10),
		reorder.ReorderDays(0, 2),
		reorder.AcrossDays("day-2", "day-1", 2, -3),
	}
	for _, m := range moves {
		require.NoError(t, h.c.Apply(m))
		snap := h.c.Snapshot()
		require.NoError(t, model.CheckInvariants(snap))
		assert.ElementsMatch(t, want, snap.ActivityIDs())
	}
}

func TestSetTripName_BlankResetsToPlaceholder(t *testing.T) {
	h := newHarness(t, sample())

	assert.Equal(t, "Lisbon", h.c.SetTripName("  Lisbon "))
	assert.Equal(t, model.DefaultTripName, h.c.SetTripName("   "))
	assert.Equal(t, model.DefaultTripName, persisted(t, h.mem).TripName)
}

type failingStore struct{ store.Memory }

func (f *failingStore) Save(context.Context, model.TripState) error {
	return errors.New("disk full")
}

func TestSaveFailure_IsLoggedAndNotifiedNotReturned(t *testing.T) {
	var logs bytes.Buffer
	notes := &notify.Recorder{}
	c := NewWithState(context.Background(), sample(), Options{
		Persistence: &failingStore{},
		Notifier:    notes,
		Logger:      slog.New(slog.NewTextHandler(&logs, nil)),
	})

	_, added, err := c.AddActivity("day-1", model.Activity{Title: "Still works"})

	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 10, c.Snapshot().ActivityCount())
	assert.Contains(t, logs.String(), "disk full")
	kinds := []notify.Kind{}
	for _, n := range notes.Notes() {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []notify.Kind{notify.KindError, notify.KindSuccess}, kinds)
}

func TestReload_AdoptsExternalChanges(t *testing.T) {
	h := newHarness(t, sample())
	require.NoError(t, h.c.Save())

	other := NewWithState(context.Background(), h.c.Snapshot(), Options{Persistence: h.mem})
	other.RemoveDay("day-1")

	require.NoError(t, h.c.Reload())
	assert.Len(t, h.c.Snapshot().Days, 2)

	empty := NewWithState(context.Background(), sample(), Options{Persistence: store.NewMemory()})
	assert.Error(t, empty.Reload())
	assert.Len(t, empty.Snapshot().Days, 3)
}

func TestGalleryAndSlots(t *testing.T) {
	h := newHarness(t, twoDays())
	_, ok := h.c.Slots("missing")
	assert.False(t, ok)
	assert.Empty(t, h.c.Gallery())

	_, _, err := h.c.AddActivity("B", model.Activity{Title: "View", ImageURL: "https://example.com/v.jpg"})
	require.NoError(t, err)

	g := h.c.Gallery()
	require.Len(t, g, 1)
	assert.Equal(t, "B", g[0].DayID)
	assert.Equal(t, 1, g[0].DayIndex)

	slots, ok := h.c.Slots("A")
	require.True(t, ok)
	assert.Len(t, slots.Morning, 1)
	assert.Len(t, slots.Afternoon, 1)
}

func TestExport(t *testing.T) {
	h := newHarness(t, twoDays())
	dir := t.TempDir()

	path, err := h.c.Export(dir, false)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scenario-itinerary.txt"), path)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "SCENARIO\n\nDAY 1: "))
	assert.Equal(t, notify.Note{Message: "Trip exported successfully!", Kind: notify.KindSuccess}, lastNote(t, h.notes))

	_, err = h.c.Export(dir, false)
	assert.Error(t, err)
	assert.Equal(t, notify.KindError, lastNote(t, h.notes).Kind)

	var buf bytes.Buffer
	require.NoError(t, h.c.ExportTo(&buf))
	assert.Contains(t, buf.String(), "- • a2\n  Notes: keep me\n")
}

func TestConcurrentMutationsKeepInvariants(t *testing.T) {
	h := newHarness(t, sample())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_, _, _ = h.c.AddActivity("day-1", model.Activity{Title: fmt.Sprintf("t%d-%d", i, j)})
				_ = h.c.MoveActivityAcrossDays(0, 1+j%2, j, i)
				_ = h.c.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	snap := h.c.Snapshot()
	require.NoError(t, model.CheckInvariants(snap))
	assert.Equal(t, 9+8*20, snap.ActivityCount())
}
