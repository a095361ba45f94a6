// Package output renders command results as styled text, markdown, or
// JSON depending on the configured format and the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Renderer writes command output in a single mode, keeping prose and
// machine-readable documents on the right streams.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	isTTY   bool
	colored bool
	styles  *Styles
}

// NewRenderer creates a renderer, detecting the TTY state from out.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use it to exercise both styled and plain rendering.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
	r.colored = isTTY && r.EffectiveMode() == ModeText && termenv.EnvColorProfile() != termenv.Ascii
	r.styles = newStyles(r.colored)
	return r
}

// EffectiveMode resolves ModeAuto to the concrete mode used for
// rendering. Unknown modes fall back to plain text.
func (r *Renderer) EffectiveMode() Mode {
	switch r.mode {
	case ModeText, ModeMarkdown, ModeJSON:
		return r.mode
	default:
		return ModeText
	}
}

// IsTTY reports whether stdout is attached to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Writer returns the stdout writer, e.g. for table rendering.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Styles returns the active style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// proseWriter keeps human-readable lines off stdout in JSON mode.
func (r *Renderer) proseWriter() io.Writer {
	if r.EffectiveMode() == ModeJSON {
		return r.errOut
	}
	return r.out
}

// Println writes a prose line.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.proseWriter(), s)
}

// Printf writes formatted prose.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.proseWriter(), format, args...)
}

// Success writes a checkmarked confirmation line.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.proseWriter(), r.styles.Success.Render("✓ "+msg))
}

// Warning writes a warning line to stderr.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.errOut, r.styles.Warning.Render("! "+msg))
}

// Header writes a section header. In markdown mode it renders a
// #-prefixed heading, otherwise a styled line.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		return
	}
	style := r.styles.Header2
	if level <= 1 {
		style = r.styles.Header1
	}
	r.Println(style.Render(text))
}

// StatusLine writes a per-item status row. Recognized statuses are
// "success", "failed", and "warning"; anything else renders a dash.
func (r *Renderer) StatusLine(name, status, detail string) {
	marker := "-"
	switch status {
	case "success":
		marker = r.styles.StatusSuccess.String()
	case "failed", "error":
		marker = r.styles.StatusFailed.String()
	case "warning", "skipped":
		marker = r.styles.StatusWarning.String()
	}

	line := marker + " " + name
	if detail != "" {
		line += " " + r.styles.Muted.Render("("+detail+")")
	}
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("- " + line)
		return
	}
	r.Println("  " + line)
}

// JSON writes v to stdout as an indented JSON document.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
