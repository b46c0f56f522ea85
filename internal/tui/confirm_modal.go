package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// confirmState is a pending destructive action waiting for a yes/no.
type confirmState struct {
	title  string
	body   string
	focus  confirmModalFocus
	action func()
}

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	head := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(bodyW + 2).
		Render(head + "\n\n" + content)
}

func renderConfirmModal(width int, c confirmState) string {
	// No borders on the buttons: nested borders inside a colored modal leave
	// background artifacts on some terminals.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render("Remove")
	cancel := btnBase.Render("Cancel")
	if c.focus == confirmFocusConfirm {
		confirm = btnActive.Render("Remove")
	} else {
		cancel = btnActive.Render("Cancel")
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)
	help := styleMuted().Width(modalBodyWidth(width)).Render("tab: focus   enter: select   y/n   esc: cancel")

	content := strings.Join([]string{c.body, "", controls, "", help}, "\n")
	return renderModalBox(width, c.title, content)
}
