package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of everything drawn outside the table itself.
type Theme struct {
	// Status line
	StatusText  lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style

	// Prompts
	PromptLabel lipgloss.Style
	PromptText  lipgloss.Style

	// Legend
	LegendTitle lipgloss.Style

	// Browser
	Title         lipgloss.Style
	Panel         lipgloss.Style
	TabNormal     lipgloss.Style
	TabActive     lipgloss.Style
	SidebarActive lipgloss.Style
	Empty         lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		StatusText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Soft red
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		PromptLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // Bright cyan
		PromptText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		LegendTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TabNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		SidebarActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// MonochromeTheme drops all colors, for terminals where NO_COLOR is set.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.StatusError = lipgloss.NewStyle().Bold(true)
	theme.PromptLabel = lipgloss.NewStyle().Bold(true)
	theme.TabActive = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	theme.SidebarActive = lipgloss.NewStyle().Reverse(true)
	return theme
}
