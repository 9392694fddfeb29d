package demo

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the demo.
const (
	colorAccent    = "86"  // section headers
	colorHighlight = "205" // guide markers
	colorMuted     = "241" // status and overscroll
	colorText      = "252" // body text
	colorDanger    = "196" // reported errors
)

var styles = struct {
	Header    lipgloss.Style
	Body      lipgloss.Style
	Guide     lipgloss.Style
	Overflow  lipgloss.Style
	Status    lipgloss.Style
	StatusKey lipgloss.Style
	Error     lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Guide: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)),
	Overflow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)).
		Faint(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(colorMuted)),
	StatusKey: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDanger)),
}
