package theme

import "github.com/charmbracelet/lipgloss"

// Palette supplies segment colors as hex strings. Entry 0 is the accent
// color; the remaining entries are the fallback candidates for segments
// without an explicit color.
type Palette struct {
	Entries    []string
	Neutral    string
	Background string
}

// Candidates returns the fallback colors, skipping the accent entry.
func (p Palette) Candidates() []string {
	if len(p.Entries) <= 1 {
		return append([]string(nil), p.Entries...)
	}
	return append([]string(nil), p.Entries[1:]...)
}

// Accent returns entry 0, or the neutral color for an empty palette.
func (p Palette) Accent() string {
	if len(p.Entries) == 0 {
		return p.Neutral
	}
	return p.Entries[0]
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Display       *lipgloss.Style
	LegendTitle   *lipgloss.Style
	LegendValue   *lipgloss.Style
	LegendActive  *lipgloss.Style
	TooltipBox    *lipgloss.Style
	TooltipKey    *lipgloss.Style
	TooltipValue  *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPending *lipgloss.Style
}

var defaultPalette = Palette{
	Entries: []string{
		"#00bcf2", // blueLight
		"#0078d4", // blue
		"#00188f", // blueMid
		"#e81123", // red
		"#000000", // black
	},
	Neutral:    "#c8c6c4",
	Background: "#1e1e1e",
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Display: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	LegendTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	LegendValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	LegendActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	TooltipBox: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(defaultPalette.Accent())).Padding(0, 1),
	),
	TooltipKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	TooltipValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// DefaultPalette returns the standard segment palette.
func DefaultPalette() Palette {
	p := defaultPalette
	p.Entries = append([]string(nil), defaultPalette.Entries...)
	return p
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
