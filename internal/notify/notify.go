// Package notify delivers the short user-facing messages the trip controller
// emits after mutations ("Day added successfully", ...).
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notifier interface {
	Notify(message string, kind Kind)
}

// Func adapts a plain function to Notifier.
type Func func(message string, kind Kind)

func (f Func) Notify(message string, kind Kind) { f(message, kind) }

// Discard drops every notification.
var Discard Notifier = Func(func(string, Kind) {})

type Mode string

const (
	ModeTerminal Mode = "terminal"
	ModeLog      Mode = "log"
	ModeOff      Mode = "off"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeTerminal:
		return ModeTerminal, nil
	case ModeLog, ModeOff:
		return m, nil
	default:
		return "", fmt.Errorf("unknown notify mode %q (want terminal|log|off)", s)
	}
}

// New builds the sink for mode. Terminal toasts go to w; log mode uses log.
func New(mode Mode, w io.Writer, log *slog.Logger) Notifier {
	switch mode {
	case ModeOff:
		return Discard
	case ModeLog:
		return NewLog(log)
	default:
		return NewTerminal(w)
	}
}

// Note is one recorded notification.
type Note struct {
	Message string
	Kind    Kind
}

// Recorder keeps every notification, for tests and for front ends that
// render toasts themselves.
type Recorder struct {
	mu    sync.Mutex
	notes []Note
}

func (r *Recorder) Notify(message string, kind Kind) {
	r.mu.Lock()
	r.notes = append(r.notes, Note{Message: message, Kind: kind})
	r.mu.Unlock()
}

func (r *Recorder) Notes() []Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Note{}, r.notes...)
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return Note{}, false
	}
	return r.notes[len(r.notes)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.notes = nil
	r.mu.Unlock()
}

// Log writes notifications as structured log records.
type Log struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) *Log {
	if log == nil {
		log = slog.Default()
	}
	return &Log{log: log}
}

func (l *Log) Notify(message string, kind Kind) {
	switch kind {
	case KindError:
		l.log.Error(message, "kind", string(kind))
	default:
		l.log.Info(message, "kind", string(kind))
	}
}

// Terminal prints one styled line per notification. Color is only used when
// w is a terminal and NO_COLOR is unset.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
	r  *lipgloss.Renderer
}

func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stderr
	}
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) && strings.TrimSpace(os.Getenv("NO_COLOR")) == "" {
		profile = termenv.NewOutput(f).EnvColorProfile()
	}
	return &Terminal{w: w, r: lipgloss.NewRenderer(w, termenv.WithProfile(profile))}
}

func (t *Terminal) style(kind Kind) (string, lipgloss.Style) {
	base := t.r.NewStyle().Bold(true)
	switch kind {
	case KindSuccess:
		return "✓", base.Foreground(lipgloss.Color("#34C759"))
	case KindError:
		return "✗", base.Foreground(lipgloss.Color("#FF3B30"))
	default:
		return "•", base.Foreground(lipgloss.Color("#007AFF"))
	}
}

func (t *Terminal) Notify(message string, kind Kind) {
	glyph, st := t.style(kind)
	line := st.Render(glyph) + " " + message
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.w, line)
}
