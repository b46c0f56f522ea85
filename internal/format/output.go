package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table: values implementing Tabler render as an aligned table; anything
//   else falls back to pretty JSON.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return WriteJSON(w, v, pretty)
	case FormatTable:
		if t, ok := tablerOf(v); ok {
			return WriteTable(w, t.Table())
		}
		return WriteJSON(w, v, true)
	default:
		return fmt.Errorf("unknown format: %s (want json|table)", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// Envelope is the JSON shape of every successful command: {"data": ...}.
// Tables are taken from the payload.
type Envelope struct {
	Data any `json:"data"`
}

func (e Envelope) Table() Table {
	if t, ok := tablerOf(e.Data); ok {
		return t.Table()
	}
	return Table{}
}

func tablerOf(v any) (Tabler, bool) {
	switch t := v.(type) {
	case Envelope:
		if _, ok := t.Data.(Tabler); !ok {
			return nil, false
		}
		return t, true
	case Tabler:
		return t, true
	default:
		return nil, false
	}
}
