package format

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
)

// Table is a titled grid of already-formatted cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// Empty is printed instead of the grid when there are no rows.
	Empty string
}

// Tabler is implemented by command payloads that have a table rendering.
type Tabler interface {
	Table() Table
}

// WriteTable renders t with uitable. Headers are bold when w is a terminal.
func WriteTable(w io.Writer, t Table) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if !colorEnabled(w) {
		bold.DisableColor()
		faint.DisableColor()
	}

	if t.Title != "" {
		if _, err := fmt.Fprintln(w, bold.Sprint(t.Title)); err != nil {
			return err
		}
	}
	if len(t.Rows) == 0 {
		msg := t.Empty
		if msg == "" {
			msg = "(none)"
		}
		_, err := fmt.Fprintln(w, faint.Sprint(msg))
		return err
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	if len(t.Headers) > 0 {
		hdr := make([]any, 0, len(t.Headers))
		for _, h := range t.Headers {
			hdr = append(hdr, bold.Sprint(h))
		}
		tbl.AddRow(hdr...)
	}
	for _, r := range t.Rows {
		row := make([]any, 0, len(r))
		for _, c := range r {
			row = append(row, c)
		}
		tbl.AddRow(row...)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func colorEnabled(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
