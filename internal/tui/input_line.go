package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws one form field on a single visual line of width bodyW.
func renderInputLine(bodyW int, label string, inputView string, focused bool) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// A newline in the view would wrap the modal while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	labelStyle := styleMuted()
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	}
	head := labelStyle.Render(label)

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate styling so a cut sequence does not bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return head + "\n" + line
}
