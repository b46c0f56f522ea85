package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver-cli/internal/model"
)

type rawWriter interface {
	PutRaw(ctx context.Context, raw []byte) error
}

type backendFactory func(t *testing.T) Persistence

// runPersistenceContract exercises the behavior every backend must share.
func runPersistenceContract(t *testing.T, newBackend backendFactory) {
	t.Helper()
	ctx := context.Background()

	t.Run("load before save reports not found", func(t *testing.T) {
		p := newBackend(t)
		_, found, err := p.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("round trip preserves days, order and fields", func(t *testing.T) {
		p := newBackend(t)
		want := model.SampleTrip(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
		want.TripName = "Lisbon Long Weekend"

		require.NoError(t, p.Save(ctx, want))
		got, found, err := p.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, want.TripName, got.TripName)
		require.Len(t, got.Days, len(want.Days))
		for i := range want.Days {
			assert.Equal(t, want.Days[i].ID, got.Days[i].ID)
			assert.True(t, want.Days[i].Date.Equal(got.Days[i].Date), "day %d date", i)
			assert.Equal(t, want.Days[i].Activities, got.Days[i].Activities)
		}
	})

	t.Run("save overwrites", func(t *testing.T) {
		p := newBackend(t)
		first := model.SampleTrip(time.Now().UTC())
		require.NoError(t, p.Save(ctx, first))

		second := model.TripState{TripName: "Empty", Days: []model.Day{}}
		require.NoError(t, p.Save(ctx, second))

		got, found, err := p.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Empty", got.TripName)
		assert.Empty(t, got.Days)
		assert.NotNil(t, got.Days)
	})

	t.Run("malformed record is found but fails to load", func(t *testing.T) {
		p := newBackend(t)
		rw, ok := p.(rawWriter)
		require.True(t, ok, "backend must accept raw writes")
		require.NoError(t, rw.PutRaw(ctx, []byte(`{"days": [`)))

		_, found, err := p.Load(ctx)
		assert.True(t, found)
		assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
	})
}

func TestContract_Memory(t *testing.T) {
	runPersistenceContract(t, func(t *testing.T) Persistence {
		t.Helper()
		return NewMemory()
	})
}

func TestContract_SQLite(t *testing.T) {
	runPersistenceContract(t, func(t *testing.T) Persistence {
		t.Helper()
		p, err := Open(BackendSQLite, t.TempDir())
		require.NoError(t, err)
		return p
	})
}

func TestContract_Diskv(t *testing.T) {
	runPersistenceContract(t, func(t *testing.T) Persistence {
		t.Helper()
		p, err := Open(BackendDiskv, t.TempDir())
		require.NoError(t, err)
		return p
	})
}

func TestOpen_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	for _, b := range []Backend{BackendSQLite, BackendDiskv} {
		t.Run(string(b), func(t *testing.T) {
			dir := t.TempDir()
			p1, err := Open(b, dir)
			require.NoError(t, err)
			require.NoError(t, p1.Save(ctx, model.TripState{TripName: "Kyoto", Days: []model.Day{{ID: "d1"}}}))

			p2, err := Open(b, dir)
			require.NoError(t, err)
			got, found, err := p2.Load(ctx)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "Kyoto", got.TripName)
			require.Len(t, got.Days, 1)
			assert.Equal(t, []model.Activity{}, got.Days[0].Activities)
		})
	}
}

func TestOpen_Validation(t *testing.T) {
	_, err := Open(BackendSQLite, "  ")
	assert.Error(t, err)

	_, err = Open(Backend("redis"), t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownBackend)

	p, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, p)
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, b)

	b, err = ParseBackend(" DiskV ")
	require.NoError(t, err)
	assert.Equal(t, BackendDiskv, b)

	_, err = ParseBackend("postgres")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
