package itinerary

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"tripweaver-cli/internal/model"
)

// BoardDateLayout is the short date used on boards, e.g. "Sat, Jun 7".
const BoardDateLayout = "Mon, Jan 2"

// RenderMarkdown renders the trip as a markdown board: one section per day,
// one sub-section per non-empty time-of-day slot.
func RenderMarkdown(s model.TripState) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + model.DisplayName(s.TripName))
	writeLn("")
	if s.IsEmpty() {
		writeLn("_No days planned yet._")
		return buf.String()
	}

	for i, d := range s.Days {
		writeLn(fmt.Sprintf("## Day %d · %s", i+1, d.Date.In(time.Local).Format(BoardDateLayout)))
		writeLn("")
		slots := model.GroupByTimeOfDay(d)
		if slots.Len() == 0 {
			writeLn("_No activities yet._")
			writeLn("")
			continue
		}
		for _, tod := range model.SlotOrder {
			acts := slots.Get(tod)
			if len(acts) == 0 {
				continue
			}
			writeLn("### " + tod.Label())
			writeLn("")
			for _, a := range acts {
				line := "- "
				if a.Emoji != "" {
					line += a.Emoji + " "
				}
				line += "**" + a.Title + "**"
				if a.Time != "" {
					line += " _" + a.Time + "_"
				}
				if a.Location != "" {
					line += " · " + a.Location
				}
				writeLn(line)
				if a.Notes != "" {
					writeLn("  " + a.Notes)
				}
			}
			writeLn("")
		}
	}
	return buf.String()
}

var (
	rendererMu sync.Mutex
	// Cache renderers by style + wrap width. Building one is not free and the
	// watch loop re-renders on every change.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render formats markdown for the terminal with a glamour standard style
// ("dark", "light", "notty", ...). On any renderer error the markdown is
// returned as-is.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	if strings.TrimSpace(style) == "" {
		style = "notty"
	}

	key := style + ":" + strconv.Itoa(width)
	rendererMu.Lock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			rendererMu.Unlock()
			return md
		}
		renderers[key] = rr
		r = rr
	}
	rendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
