package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	AddDay    key.Binding
	AddAct    key.Binding
	Edit      key.Binding
	Remove    key.Binding
	RemoveDay key.Binding
	Pick      key.Binding
	DayLater  key.Binding
	DayEarly  key.Binding
	Rename    key.Binding
	Export    key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		AddDay:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "add day")),
		AddAct:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add activity")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove activity")),
		RemoveDay: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "remove day")),
		Pick:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick up/drop")),
		DayLater:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "day later")),
		DayEarly:  key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "day earlier")),
		Rename:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "rename trip")),
		Export:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddDay, k.AddAct, k.Edit, k.Pick, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.AddDay, k.AddAct, k.Edit, k.Rename},
		{k.Remove, k.RemoveDay, k.Pick, k.Cancel},
		{k.DayLater, k.DayEarly, k.Export, k.Help, k.Quit},
	}
}
