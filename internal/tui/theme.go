package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Logo           lipgloss.Style
	Title          lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Remaining      lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Danger         lipgloss.Style
	DangerFocused  lipgloss.Style
	Footer         lipgloss.Style
	Dim            lipgloss.Style
	ProgressStart  string
	ProgressEnd    string
}

func buttonStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(bg)).
		Padding(0, 3)
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Logo:           lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).Bold(true),
		Title:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		InputFocused:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Remaining:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Button:         buttonStyle("63"),
		ButtonFocused:  buttonStyle("205").Bold(true).Underline(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("236")).Padding(0, 3),
		Danger:         buttonStyle("160"),
		DangerFocused:  buttonStyle("197").Bold(true).Underline(true),
		Footer:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("57")),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ProgressStart:  "#5A56E0",
		ProgressEnd:    "#EE6FF8",
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Logo:           lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1).Bold(true), // Cyan
		Title:          lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		InputFocused:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Remaining:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		Button:         buttonStyle("62"),                                                // Purple
		ButtonFocused:  buttonStyle("212").Bold(true).Underline(true),                    // Pink
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Background(lipgloss.Color("236")).Padding(0, 3),
		Danger:         buttonStyle("203"), // Red
		DangerFocused:  buttonStyle("210").Bold(true).Underline(true),
		Footer:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		ProgressStart:  "#BD93F9",
		ProgressEnd:    "#FF79C6",
	},
	"teal": {
		Name:           "Teal",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Logo:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("30")).Padding(0, 1).Bold(true),
		Title:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Input:          lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 1),
		InputFocused:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("117")).Padding(0, 1),
		Remaining:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Button:         buttonStyle("31"),                             // Blue-teal
		ButtonFocused:  buttonStyle("37").Bold(true).Underline(true), // Teal
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Background(lipgloss.Color("23")).Padding(0, 3),
		Danger:         buttonStyle("161"), // Red-pink
		DangerFocused:  buttonStyle("205").Bold(true).Underline(true),
		Footer:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("61")),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ProgressStart:  "#3B82F6",
		ProgressEnd:    "#14B8A6",
	},
}

// ResolveTheme looks up a theme by key, falling back to the default theme.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames returns the theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextTheme returns the key after current in ThemeNames order, wrapping around.
func nextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
