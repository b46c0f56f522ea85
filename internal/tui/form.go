package tui

import (
	"errors"
	"strings"

	"tripweaver-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldTimeOfDay
	fieldTime
	fieldLocation
	fieldNotes
	fieldEmoji
	fieldImageURL
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Time of day (morning, afternoon, evening or blank)",
	"Time",
	"Location",
	"Notes",
	"Emoji",
	"Image URL",
}

// activityForm edits every field of one activity. editID is empty when the
// form adds a new activity to dayID.
type activityForm struct {
	dayID  string
	editID string
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newActivityForm(dayID string, a model.Activity, editID string) activityForm {
	f := activityForm{dayID: dayID, editID: editID}
	values := [fieldCount]string{
		a.Title,
		string(a.TimeOfDay),
		a.Time,
		a.Location,
		a.Notes,
		a.Emoji,
		a.ImageURL,
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		in.SetValue(values[i])
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Placeholder = "Museum tour"
	f.inputs[fieldTime].Placeholder = "9:00 AM"
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *activityForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f activityForm) update(msg tea.Msg) (activityForm, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return f, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// activity builds the activity described by the form.
func (f activityForm) activity() (model.Activity, error) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return model.Activity{}, errors.New("title is required")
	}
	tod, ok := model.ParseTimeOfDay(f.inputs[fieldTimeOfDay].Value())
	if !ok {
		return model.Activity{}, errors.New("time of day must be morning, afternoon, evening or blank")
	}
	return model.Activity{
		ID:        f.editID,
		Title:     title,
		TimeOfDay: tod,
		Time:      strings.TrimSpace(f.inputs[fieldTime].Value()),
		Location:  strings.TrimSpace(f.inputs[fieldLocation].Value()),
		Notes:     strings.TrimSpace(f.inputs[fieldNotes].Value()),
		Emoji:     strings.TrimSpace(f.inputs[fieldEmoji].Value()),
		ImageURL:  strings.TrimSpace(f.inputs[fieldImageURL].Value()),
	}, nil
}

func (f activityForm) view(width int) string {
	bodyW := modalBodyWidth(width)
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(renderInputLine(bodyW, fieldLabels[i], f.inputs[i].View(), i == f.focus))
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle().Render(f.err) + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("tab/↓: next   shift+tab/↑: prev   enter: save   esc: cancel"))

	title := "Add activity"
	if f.editID != "" {
		title = "Edit activity"
	}
	return renderModalBox(width, title, b.String())
}
