package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used to draw a countdown.
type Theme struct {
	Name      string
	Header    lipgloss.Style
	Elapsed   lipgloss.Style
	Remaining lipgloss.Style
	Percent   lipgloss.Style
	Dim       lipgloss.Style
	Done      lipgloss.Style
	BarFull   string // bar fill color, empty means plain glyphs
	BarEmpty  string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Elapsed:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Remaining: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Percent:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		BarFull:   "205",
		BarEmpty:  "240",
	},
	"plain": {
		Name:      "Plain",
		Header:    lipgloss.NewStyle(),
		Elapsed:   lipgloss.NewStyle(),
		Remaining: lipgloss.NewStyle(),
		Percent:   lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle(),
		Done:      lipgloss.NewStyle(),
	},
}

// ThemeFor picks the palette for a run.
func ThemeFor(color bool) Theme {
	if color {
		return Themes["default"]
	}
	return Themes["plain"]
}
