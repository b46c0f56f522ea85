package reorder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	base := []string{"a", "b", "c", "d"}

	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"down", 0, 2, []string{"b", "c", "a", "d"}},
		{"up", 3, 1, []string{"a", "d", "b", "c"}},
		{"same", 1, 1, []string{"a", "b", "c", "d"}},
		{"to past end appends", 1, 99, []string{"a", "c", "d", "b"}},
		{"negative to prepends", 2, -5, []string{"c", "a", "b", "d"}},
		{"from past end clamps to last", 42, 0, []string{"d", "a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Move(base, tc.from, tc.to)
			assert.Equal(t, tc.want, got)
			assert.True(t, SamePermutation(base, got))
		})
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, base, "input must not be modified")
}

func TestMove_ShortSlices(t *testing.T) {
	assert.Empty(t, Move([]int{}, 0, 3))
	assert.Equal(t, []int{7}, Move([]int{7}, 5, -1))
}

func TestRemoveInsert(t *testing.T) {
	xs := []int{1, 2, 3}
	rest, v := Remove(xs, 10)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2}, rest)
	assert.Equal(t, []int{1, 2, 3}, xs)

	assert.Equal(t, []int{9, 1, 2, 3}, Insert(xs, -1, 9))
	assert.Equal(t, []int{1, 2, 3, 9}, Insert(xs, 100, 9))
	assert.Equal(t, []int{9}, Insert(nil, 0, 9))
}

func TestSamePermutation(t *testing.T) {
	assert.True(t, SamePermutation([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, SamePermutation([]string{"a", "b"}, []string{"a", "a"}))
	assert.False(t, SamePermutation([]string{"a", "b"}, []string{"a"}))
	assert.False(t, SamePermutation([]string{"a", "b"}, []string{"a", "c"}))
	assert.True(t, SamePermutation(nil, []string{}))
}

func TestCommandValidate(t *testing.T) {
	require.NoError(t, ReorderDays(0, 2).Validate())
	require.NoError(t, WithinDay("day-1", 0, 1).Validate())
	require.NoError(t, AcrossDays("day-1", "day-2", 1, 0).Validate())
	require.NoError(t, Command{Kind: KindWithinDay, SourceContainer: "day-1"}.Validate())

	bad := []Command{
		{Kind: KindReorderDays, SourceContainer: "day-1"},
		{Kind: KindWithinDay},
		{Kind: KindWithinDay, SourceContainer: "day-1", DestContainer: "day-2"},
		{Kind: KindAcrossDays, SourceContainer: "day-1"},
	}
	for _, c := range bad {
		err := c.Validate()
		assert.True(t, errors.Is(err, ErrMalformedCommand), "%+v: %v", c, err)
	}

	assert.ErrorIs(t, Command{Kind: "sideways"}.Validate(), ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Across-Days ")
	require.NoError(t, err)
	assert.Equal(t, KindAcrossDays, k)

	_, err = ParseKind("diagonal")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
