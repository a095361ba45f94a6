package output

// Mode controls how command output is rendered.
type Mode string

const (
	// ModeAuto renders text, styled when stdout is a terminal.
	ModeAuto Mode = "auto"
	// ModeText renders plain human-readable text.
	ModeText Mode = "text"
	// ModeMarkdown renders GitHub-flavored markdown.
	ModeMarkdown Mode = "markdown"
	// ModeJSON renders a machine-readable JSON document on stdout.
	ModeJSON Mode = "json"
)

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeText, ModeMarkdown, ModeJSON:
		return true
	}
	return false
}
