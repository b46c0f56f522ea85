package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"tripweaver-cli/internal/model"
)

// record is the persisted layout. Days is a pointer so a missing key and an
// explicit empty list both decode to an empty trip.
type record struct {
	Days     *[]model.Day `json:"days"`
	TripName string       `json:"tripName"`
}

// Encode renders the persisted JSON document for s.
func Encode(s model.TripState) ([]byte, error) {
	// Clone never yields nil slices, so empty lists encode as [].
	days := s.Clone().Days
	return json.Marshal(record{Days: &days, TripName: s.TripName})
}

// Decode parses a persisted document. A missing or empty days array is an
// empty trip; a blank trip name falls back to the placeholder.
func Decode(b []byte) (model.TripState, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.TripState{}, fmt.Errorf("%w: not a JSON object", ErrMalformed)
	}
	var rec record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return model.TripState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := model.TripState{TripName: model.DisplayName(rec.TripName), Days: []model.Day{}}
	if rec.Days != nil {
		out.Days = *rec.Days
	}
	for i := range out.Days {
		out.Days[i].ID = strings.TrimSpace(out.Days[i].ID)
		if out.Days[i].Activities == nil {
			out.Days[i].Activities = []model.Activity{}
		}
	}
	if err := model.CheckInvariants(out); err != nil {
		return model.TripState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
