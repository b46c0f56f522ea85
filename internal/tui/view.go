package tui

import (
	"strconv"
	"strings"

	"tripweaver-cli/internal/docs"
	"tripweaver-cli/internal/itinerary"
	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	minColumnWidth = 24
	maxColumnWidth = 36
)

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError).Bold(true)
}

func (m Model) View() string {
	s := m.ctrl.Snapshot()

	header := lipgloss.NewStyle().Bold(true).Render(s.TripName) +
		styleMuted().Render("  "+strconv.Itoa(len(s.Days))+" days · "+strconv.Itoa(s.ActivityCount())+" activities")

	var body string
	switch {
	case m.mode == modeHelp:
		body = m.help.FullHelpView(m.keys.FullHelp())
	case s.IsEmpty():
		body = m.viewWelcome()
	default:
		body = m.viewBoard(s)
	}

	switch m.mode {
	case modeForm:
		body = m.form.view(m.width)
	case modeConfirm:
		body = renderConfirmModal(m.width, m.confirm)
	case modeRename:
		body = renderModalBox(m.width, "Rename trip",
			renderInputLine(modalBodyWidth(m.width), "Trip name (blank resets)", m.rename.View(), true)+
				"\n\n"+styleMuted().Render("enter: save   esc: cancel"))
	}

	return strings.Join([]string{header, "", body, "", m.viewStatus(), m.help.View(m.keys)}, "\n")
}

func (m Model) viewWelcome() string {
	md, _ := docs.Get(docs.Welcome)
	return itinerary.Render(md, min(m.width-2, 100), m.opts.MarkdownStyle)
}

func (m Model) columnWidth(days int) int {
	if days == 0 {
		return maxColumnWidth
	}
	w := (m.width - 1) / days
	return min(max(w, minColumnWidth), maxColumnWidth)
}

// viewBoard renders the days as side-by-side columns, scrolled so the
// selected day is visible.
func (m Model) viewBoard(s model.TripState) string {
	colW := m.columnWidth(len(s.Days))
	visible := max(m.width/colW, 1)
	first := 0
	if m.day >= visible {
		first = m.day - visible + 1
	}
	last := min(first+visible, len(s.Days))

	cols := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		cols = append(cols, m.viewDay(i, s.Days[i], colW))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if first > 0 || last < len(s.Days) {
		board += "\n" + styleMuted().Render("days "+strconv.Itoa(first+1)+"-"+strconv.Itoa(last)+" of "+strconv.Itoa(len(s.Days)))
	}
	return board
}

func (m Model) viewDay(i int, d model.Day, colW int) string {
	inner := colW - 4
	selectedDay := i == m.day
	color := dayColor(i)

	title := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(xansi.Truncate("Day "+strconv.Itoa(i+1)+" · "+d.Date.Local().Format(itinerary.BoardDateLayout), inner, "…"))

	lines := []string{title}
	rows := displayRows(d)
	slots := model.GroupByTimeOfDay(d)
	row := 0
	for _, tod := range model.SlotOrder {
		acts := slots.Get(tod)
		if len(acts) == 0 {
			continue
		}
		lines = append(lines, "", styleMuted().Render(tod.Label()))
		for _, a := range acts {
			lines = append(lines, m.viewActivity(a, selectedDay && row == m.row, inner))
			row++
		}
	}
	if len(rows) == 0 {
		lines = append(lines, "", styleMuted().Render("No activities"))
	}
	if m.carry != nil && selectedDay && m.row == len(rows) {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorAccent).Render("▸ drop here"))
	}

	border := colorCardBorder
	if selectedDay {
		border = color
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(colW - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewActivity(a model.Activity, selected bool, width int) string {
	label := a.Title
	if a.Emoji != "" {
		label = a.Emoji + " " + label
	}
	if a.Time != "" {
		label += " · " + a.Time
	}
	marker := "  "
	if m.carry != nil && m.carry.activityID == a.ID {
		marker = "✥ "
	} else if selected {
		marker = "› "
	}
	line := xansi.Truncate(marker+label, width, "…")
	if selected {
		return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true).Render(line)
	}
	return line
}

func (m Model) viewStatus() string {
	if m.carry != nil {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("Carrying an activity: move to a spot and press space to drop (esc cancels)")
	}
	if !m.hasStatus {
		return ""
	}
	st := lipgloss.NewStyle().Foreground(colorSuccess)
	glyph := "✓ "
	switch m.status.Kind {
	case notify.KindError:
		st, glyph = errorStyle(), "✗ "
	case notify.KindInfo:
		st, glyph = styleMuted(), "• "
	}
	return st.Render(glyph + m.status.Message)
}
