// Package itinerary renders a trip for people: the plain-text export file and
// a markdown board used for terminal previews.
package itinerary

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"tripweaver-cli/internal/model"
)

const (
	ruleWidth = 50

	// ExportDateLayout is the day heading date, e.g. "Saturday, June 7".
	ExportDateLayout = "Monday, January 2"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}\v\x{FEFF}\x{2028}\x{2029}]+`)
	pathSeparator = regexp.MustCompile(`[/\\]`)
)

// RenderText renders the export document with day dates in local time.
func RenderText(s model.TripState) string {
	return RenderTextIn(s, time.Local)
}

// RenderTextIn renders the export document with day dates shown in loc.
func RenderTextIn(s model.TripState, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}
	rule := strings.Repeat("=", ruleWidth)

	writeLn(strings.ToUpper(model.DisplayName(s.TripName)))
	writeLn("")

	for i, d := range s.Days {
		writeLn(fmt.Sprintf("DAY %d: %s", i+1, d.Date.In(loc).Format(ExportDateLayout)))
		writeLn(rule)
		writeLn("")

		slots := model.GroupByTimeOfDay(d)
		for _, tod := range []model.TimeOfDay{model.TimeOfDayMorning, model.TimeOfDayAfternoon, model.TimeOfDayEvening} {
			writeLn(strings.ToUpper(tod.Label()) + ":")
			acts := slots.Get(tod)
			if len(acts) == 0 {
				writeLn("- No activities planned")
				writeLn("")
				continue
			}
			for _, a := range acts {
				writeActivity(writeLn, a)
			}
		}
		if len(slots.Unscheduled) > 0 {
			writeLn("OTHER ACTIVITIES:")
			for _, a := range slots.Unscheduled {
				writeActivity(writeLn, a)
			}
		}

		writeLn("")
		writeLn(rule)
		writeLn("")
	}
	return buf.String()
}

func writeActivity(writeLn func(string), a model.Activity) {
	glyph := a.Emoji
	if glyph == "" {
		glyph = "•"
	}
	line := "- " + glyph + " " + a.Title
	if a.Time != "" {
		line += " (" + a.Time + ")"
	}
	writeLn(line)
	if a.Location != "" {
		writeLn("  Location: " + a.Location)
	}
	if a.Notes != "" {
		writeLn("  Notes: " + a.Notes)
	}
	writeLn("")
}

// Filename derives the export file name from the trip name:
// "Weekend City Gateway" -> "weekend-city-gateway-itinerary.txt". The result
// is always a single path element.
func Filename(tripName string) string {
	name := whitespaceRun.ReplaceAllString(model.DisplayName(tripName), "-")
	name = pathSeparator.ReplaceAllString(name, "-")
	name = strings.ReplaceAll(name, string(filepath.Separator), "-")
	if strings.HasPrefix(name, ".") {
		name = "-" + name[1:]
	}
	return strings.ToLower(name) + "-itinerary.txt"
}
