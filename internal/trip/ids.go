package trip

import (
	"strings"

	"github.com/google/uuid"

	"tripweaver-cli/internal/model"
)

const (
	dayIDPrefix      = "day"
	activityIDPrefix = "activity"
)

// newRandomID returns prefix-<8 hex chars> taken from a random UUID.
func newRandomID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "-" + suffix
}

func idExists(s model.TripState, id string) bool {
	for _, d := range s.Days {
		if d.ID == id {
			return true
		}
		for _, a := range d.Activities {
			if a.ID == id {
				return true
			}
		}
	}
	return false
}

// uniqueID draws ids until one is unused in s. Day and activity ids share one
// namespace so a bare id is never ambiguous on the command line.
func (c *Controller) uniqueID(s model.TripState, prefix string) string {
	for i := 0; i < 16; i++ {
		id := c.newID(prefix)
		if id != "" && !idExists(s, id) {
			return id
		}
	}
	// Generator keeps colliding (only plausible with a stubbed one).
	for {
		id := prefix + "-" + uuid.NewString()
		if !idExists(s, id) {
			return id
		}
	}
}
