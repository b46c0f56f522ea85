package tui

import (
	"log/slog"
	"slices"
	"strconv"

	"tripweaver-cli/internal/model"
	"tripweaver-cli/internal/notify"
	"tripweaver-cli/internal/reorder"
	"tripweaver-cli/internal/store"
	"tripweaver-cli/internal/trip"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBoard mode = iota
	modeForm
	modeConfirm
	modeRename
	modeHelp
)

// Options configures the board.
type Options struct {
	// ExportDir receives the itinerary file on E.
	ExportDir string
	// Notes must be the notifier the controller reports to; the board shows
	// the latest note in its status line.
	Notes *notify.Recorder
	// Changes signals external writes to the stored trip. Nil disables live
	// reload.
	Changes <-chan struct{}
	// MarkdownStyle is the glamour style for the welcome guide.
	MarkdownStyle string
	// StateDir keeps the selection across sessions. Empty disables it.
	StateDir string
	Log      *slog.Logger
}

// carried is the activity picked up with space, waiting to be dropped.
type carried struct {
	dayID      string
	activityID string
}

type storeChangedMsg struct{}

type storeClosedMsg struct{}

type Model struct {
	ctrl *trip.Controller
	opts Options
	keys keyMap
	help help.Model

	width  int
	height int

	// day is the selected column; row indexes the day's activities in
	// display (slot) order. While carrying, row may equal the count to mean
	// "drop at the end".
	day int
	row int

	mode    mode
	form    activityForm
	rename  textinput.Model
	confirm confirmState
	carry   *carried

	status    notify.Note
	hasStatus bool
}

func New(c *trip.Controller, opts Options) Model {
	if opts.Notes == nil {
		opts.Notes = &notify.Recorder{}
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "notty"
	}
	m := Model{
		ctrl:   c,
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  100,
		height: 30,
	}
	m.restoreSelection()
	return m
}

func (m *Model) restoreSelection() {
	if m.opts.StateDir == "" {
		return
	}
	st, err := store.LoadBoardState(m.opts.StateDir)
	if err != nil {
		m.opts.Log.Debug("tui: board state unavailable", "error", err)
		return
	}
	s := m.ctrl.Snapshot()
	if st.SelectedActivityID != "" {
		if _, _, ok := s.LocateActivity(st.SelectedActivityID); ok {
			m.focusActivity(st.SelectedActivityID)
			return
		}
	}
	if i := s.DayIndex(st.SelectedDayID); i >= 0 {
		m.day = i
	}
}

func (m Model) saveSelection() {
	if m.opts.StateDir == "" {
		return
	}
	s := m.ctrl.Snapshot()
	var st store.BoardState
	if d, a, ok := m.selectedActivity(s); ok {
		st.SelectedDayID, st.SelectedActivityID = d.ID, a.ID
	} else if d, ok := m.selectedDay(s); ok {
		st.SelectedDayID = d.ID
	}
	if err := store.SaveBoardState(m.opts.StateDir, st); err != nil {
		m.opts.Log.Warn("tui: save board state failed", "error", err)
	}
}

func (m Model) Init() tea.Cmd { return waitForChange(m.opts.Changes) }

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return storeClosedMsg{}
		}
		return storeChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case storeChangedMsg:
		if err := m.ctrl.Reload(); err != nil {
			m.opts.Log.Warn("tui: reload failed", "error", err)
		}
		m.clampSelection()
		return m, waitForChange(m.opts.Changes)

	case storeClosedMsg:
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeRename:
			return m.updateRename(msg)
		case modeHelp:
			m.mode = modeBoard
			return m, nil
		default:
			return m.updateBoard(msg)
		}
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.ctrl.Snapshot()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSelection()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp

	case key.Matches(msg, m.keys.Cancel):
		m.carry = nil
		m.clampSelection()

	case key.Matches(msg, m.keys.Left):
		m.selectDay(m.day - 1)

	case key.Matches(msg, m.keys.Right):
		m.selectDay(m.day + 1)

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(msg, m.keys.Down):
		if m.row < m.maxRow(s) {
			m.row++
		}

	case key.Matches(msg, m.keys.AddDay):
		m.ctrl.AddDay()
		m.selectDay(len(m.ctrl.Snapshot().Days) - 1)
		m.takeStatus()

	case key.Matches(msg, m.keys.AddAct):
		if d, ok := m.selectedDay(s); ok {
			m.form = newActivityForm(d.ID, model.Activity{}, "")
			m.mode = modeForm
		}

	case key.Matches(msg, m.keys.Edit):
		if d, a, ok := m.selectedActivity(s); ok {
			m.form = newActivityForm(d.ID, a, a.ID)
			m.mode = modeForm
		}

	case key.Matches(msg, m.keys.Remove):
		if _, a, ok := m.selectedActivity(s); ok {
			id := a.ID
			m.confirm = confirmState{
				title:  "Remove activity",
				body:   "Remove \"" + a.Title + "\"?",
				action: func() { m.ctrl.RemoveActivity(id) },
			}
			m.mode = modeConfirm
		}

	case key.Matches(msg, m.keys.RemoveDay):
		if d, ok := m.selectedDay(s); ok {
			id := d.ID
			m.confirm = confirmState{
				title:  "Remove day",
				body:   "Remove Day " + strconv.Itoa(m.day+1) + " and its " + strconv.Itoa(len(d.Activities)) + " activities?",
				action: func() { m.ctrl.RemoveDay(id) },
			}
			m.mode = modeConfirm
		}

	case key.Matches(msg, m.keys.Pick):
		m.pickOrDrop(s)

	case key.Matches(msg, m.keys.DayLater):
		m.moveDay(s, m.day+1)

	case key.Matches(msg, m.keys.DayEarly):
		m.moveDay(s, m.day-1)

	case key.Matches(msg, m.keys.Rename):
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		in.SetValue(s.TripName)
		in.Focus()
		m.rename = in
		m.mode = modeRename

	case key.Matches(msg, m.keys.Export):
		if _, err := m.ctrl.Export(m.opts.ExportDir, true); err != nil {
			m.opts.Log.Warn("tui: export failed", "error", err)
		}
		m.takeStatus()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		return m, nil
	case "enter":
		a, err := m.form.activity()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		if m.form.editID == "" {
			_, _, err = m.ctrl.AddActivity(m.form.dayID, a)
		} else {
			_, err = m.ctrl.UpdateActivity(m.form.editID, a)
		}
		if err != nil {
			m.form.err = err.Error()
			m.takeStatus()
			return m, nil
		}
		m.mode = modeBoard
		m.takeStatus()
		m.clampSelection()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirm.focus == confirmFocusConfirm {
			m.confirm.focus = confirmFocusCancel
		} else {
			m.confirm.focus = confirmFocusConfirm
		}
	case "y":
		m.runConfirm()
	case "enter":
		if m.confirm.focus == confirmFocusConfirm {
			m.runConfirm()
		} else {
			m.mode = modeBoard
		}
	case "n", "esc", "q":
		m.mode = modeBoard
	}
	return m, nil
}

func (m *Model) runConfirm() {
	if m.confirm.action != nil {
		m.confirm.action()
	}
	m.confirm = confirmState{}
	m.mode = modeBoard
	m.takeStatus()
	m.clampSelection()
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		return m, nil
	case "enter":
		m.ctrl.SetTripName(m.rename.Value())
		m.mode = modeBoard
		m.takeStatus()
		return m, nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

// pickOrDrop picks up the selected activity, or drops the carried one before
// the selected row (or at the end when past the last row).
func (m *Model) pickOrDrop(s model.TripState) {
	if m.carry == nil {
		if d, a, ok := m.selectedActivity(s); ok {
			m.carry = &carried{dayID: d.ID, activityID: a.ID}
		}
		return
	}

	c := *m.carry
	m.carry = nil
	srcDay, srcIdx, ok := s.LocateActivity(c.activityID)
	dst, okDst := m.selectedDay(s)
	if !ok || !okDst {
		m.clampSelection()
		return
	}

	destIdx := len(dst.Activities)
	if rows := displayRows(dst); m.row < len(rows) {
		destIdx = slices.IndexFunc(dst.Activities, func(a model.Activity) bool { return a.ID == rows[m.row].ID })
	}

	var cmd reorder.Command
	if s.Days[srcDay].ID == dst.ID {
		if destIdx > srcIdx {
			destIdx--
		}
		cmd = reorder.WithinDay(dst.ID, srcIdx, destIdx)
	} else {
		cmd = reorder.AcrossDays(s.Days[srcDay].ID, dst.ID, srcIdx, destIdx)
	}
	if err := m.ctrl.Apply(cmd); err != nil {
		m.opts.Log.Warn("tui: drop failed", "error", err)
	}
	m.takeStatus()
	m.focusActivity(c.activityID)
}

func (m *Model) moveDay(s model.TripState, to int) {
	if len(s.Days) < 2 || to < 0 || to >= len(s.Days) {
		return
	}
	if err := m.ctrl.Apply(reorder.ReorderDays(m.day, to)); err != nil {
		m.opts.Log.Warn("tui: move day failed", "error", err)
		return
	}
	m.day = to
	m.takeStatus()
}

// takeStatus moves the latest notification into the status line.
func (m *Model) takeStatus() {
	if n, ok := m.opts.Notes.Last(); ok {
		m.status = n
		m.hasStatus = true
	}
	m.opts.Notes.Reset()
}

func (m *Model) selectDay(i int) {
	n := len(m.ctrl.Snapshot().Days)
	if n == 0 {
		m.day, m.row = 0, 0
		return
	}
	m.day = min(max(i, 0), n-1)
	m.clampSelection()
}

func (m *Model) clampSelection() {
	s := m.ctrl.Snapshot()
	if len(s.Days) == 0 {
		m.day, m.row = 0, 0
		return
	}
	m.day = min(max(m.day, 0), len(s.Days)-1)
	m.row = min(max(m.row, 0), m.maxRow(s))
}

// focusActivity selects the activity wherever it now lives.
func (m *Model) focusActivity(id string) {
	s := m.ctrl.Snapshot()
	di, _, ok := s.LocateActivity(id)
	if !ok {
		m.clampSelection()
		return
	}
	m.day = di
	m.row = max(slices.IndexFunc(displayRows(s.Days[di]), func(a model.Activity) bool { return a.ID == id }), 0)
}

func (m Model) maxRow(s model.TripState) int {
	d, ok := m.selectedDay(s)
	if !ok {
		return 0
	}
	n := len(d.Activities)
	if m.carry != nil {
		return n
	}
	return max(n-1, 0)
}

func (m Model) selectedDay(s model.TripState) (model.Day, bool) {
	if m.day < 0 || m.day >= len(s.Days) {
		return model.Day{}, false
	}
	return s.Days[m.day], true
}

func (m Model) selectedActivity(s model.TripState) (model.Day, model.Activity, bool) {
	d, ok := m.selectedDay(s)
	if !ok {
		return model.Day{}, model.Activity{}, false
	}
	rows := displayRows(d)
	if m.row < 0 || m.row >= len(rows) {
		return d, model.Activity{}, false
	}
	return d, rows[m.row], true
}

// displayRows lists a day's activities in board order: grouped by slot, list
// order within a slot.
func displayRows(d model.Day) []model.Activity {
	slots := model.GroupByTimeOfDay(d)
	out := make([]model.Activity, 0, len(d.Activities))
	for _, tod := range model.SlotOrder {
		out = append(out, slots.Get(tod)...)
	}
	return out
}
