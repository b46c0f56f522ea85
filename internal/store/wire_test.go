package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver-cli/internal/model"
)

// A record as written by the browser app: ISO dates from toISOString and
// null timeOfDay for unscheduled activities.
const browserRecord = `{
  "days": [
    {
      "id": "day-1",
      "date": "2025-06-01T09:30:00.000Z",
      "activities": [
        {"id": "activity-1", "title": "Coffee", "timeOfDay": "morning", "time": "8:00 AM", "emoji": "☕"},
        {"id": "activity-2", "title": "Wander", "timeOfDay": null}
      ]
    },
    {"id": "day-2", "date": "2025-06-02T09:30:00.000Z", "activities": []}
  ],
  "tripName": "Paris"
}`

func TestDecode_BrowserRecord(t *testing.T) {
	st, err := Decode([]byte(browserRecord))
	require.NoError(t, err)

	assert.Equal(t, "Paris", st.TripName)
	require.Len(t, st.Days, 2)
	assert.Equal(t, 2025, st.Days[0].Date.Year())
	require.Len(t, st.Days[0].Activities, 2)
	assert.Equal(t, model.TimeOfDayMorning, st.Days[0].Activities[0].TimeOfDay)
	assert.Equal(t, model.TimeOfDayNone, st.Days[0].Activities[1].TimeOfDay)
}

func TestDecode_MissingFieldsFallBack(t *testing.T) {
	st, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTripName, st.TripName)
	assert.NotNil(t, st.Days)
	assert.Empty(t, st.Days)

	st, err = Decode([]byte(`{"days":[{"id":"d","date":"2025-01-01T00:00:00Z"}],"tripName":"   "}`))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTripName, st.TripName)
	assert.Equal(t, []model.Activity{}, st.Days[0].Activities)
}

func TestDecode_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		``,
		`[]`,
		`"days"`,
		`{"days": 3}`,
		`{"days":[{"id":"d"},{"id":"d"}]}`,
		`{"days":[{"id":"a","activities":[{"id":"x","title":"t"}]},{"id":"b","activities":[{"id":"x","title":"t"}]}]}`,
	} {
		_, err := Decode([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformed, "raw=%q", raw)
	}
}

func TestEncode_LayoutAndEmptyLists(t *testing.T) {
	st := model.TripState{TripName: "T", Days: []model.Day{{ID: "d1"}}}
	b, err := Encode(st)
	require.NoError(t, err)

	s := string(b)
	assert.True(t, strings.HasPrefix(s, `{"days":[`), s)
	assert.Contains(t, s, `"activities":[]`)
	assert.Contains(t, s, `"tripName":"T"`)
	assert.Nil(t, st.Days[0].Activities, "Encode must not modify its input")
}
