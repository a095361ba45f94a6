package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by all commands. When color
// is disabled every style is a no-op, so rendered text carries no ANSI
// sequences.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// FilePath styles guide paths in reports.
	FilePath lipgloss.Style

	// Status markers used by StatusLine.
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
	StatusWarning lipgloss.Style
}

func newStyles(colored bool) *Styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header1:       plain,
			Header2:       plain,
			Bold:          plain,
			Muted:         plain,
			Success:       plain,
			Warning:       plain,
			Error:         plain,
			Info:          plain,
			FilePath:      plain,
			StatusSuccess: plain.SetString("✓"),
			StatusFailed:  plain.SetString("✗"),
			StatusWarning: plain.SetString("!"),
		}
	}

	return &Styles{
		Header1:       lipgloss.NewStyle().Bold(true).Underline(true),
		Header2:       lipgloss.NewStyle().Bold(true),
		Bold:          lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Info:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		FilePath:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).SetString("✓"),
		StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).SetString("✗"),
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).SetString("!"),
	}
}
