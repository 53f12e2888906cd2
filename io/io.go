// Package argio binds a parser to its input and output streams and answers
// terminal questions (TTY, width, color) for help and log rendering.
package argio

import (
	stdio "io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	isTerminalFn = term.IsTerminal
	getSizeFn    = term.GetSize
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// IOManager centralizes IO and terminal capabilities
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader used by the manager and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

func (m *IOManager) In() stdio.Reader  { return m.in }
func (m *IOManager) Out() stdio.Writer { return m.out }
func (m *IOManager) Err() stdio.Writer { return m.err }

// fdOf returns the descriptor behind v when it is a real file.
func fdOf(v any) (int, bool) {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func isTerminal(v any) bool {
	fd, ok := fdOf(v)
	return ok && isTerminalFn(fd)
}

// IsTTY reports whether the configured stdout is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

// IsPiped reports whether input does not come from a terminal.
func (m *IOManager) IsPiped() bool { return !isTerminal(m.in) }

// IsRedirected reports whether output does not go to a terminal.
func (m *IOManager) IsRedirected() bool { return !m.IsTTY() }

// Width returns the terminal width of stdout, falling back to $COLUMNS and then 80.
func (m *IOManager) Width() int {
	if w, _, ok := m.size(); ok && w > 0 {
		return w
	}
	return envInt("COLUMNS", defaultWidth)
}

// Height returns the terminal height of stdout, falling back to $LINES and then 24.
func (m *IOManager) Height() int {
	if _, h, ok := m.size(); ok && h > 0 {
		return h
	}
	return envInt("LINES", defaultHeight)
}

func (m *IOManager) size() (int, int, bool) {
	fd, ok := fdOf(m.out)
	if !ok || !isTerminalFn(fd) {
		return 0, 0, false
	}
	w, h, err := getSizeFn(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

// SupportsColor reports whether ANSI colors should be emitted on stdout.
// Explicit settings win over NO_COLOR, which wins over FORCE_COLOR.
func (m *IOManager) SupportsColor() bool {
	if m.noColor {
		return false
	}
	if m.forceColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// Colorize renders s with the given attributes when color is supported;
// otherwise s is returned unchanged.
func (m *IOManager) Colorize(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// Bold returns s in bold when color is supported.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, color.Bold) }
