package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	DetailTitle lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Error       lipgloss.Style
	Spinner     lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	DialogBox   lipgloss.Style
	DialogTitle lipgloss.Style
	Button      lipgloss.Style
	InputBox    lipgloss.Style
	HelpBox     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	tab := lipgloss.NewStyle().Padding(0, 2)
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		TabActive:   tab.Bold(true).Foreground(lipgloss.Color("99")).Underline(true),
		TabInactive: tab.Foreground(lipgloss.Color("241")),
		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("99")).
			Padding(0, 2).
			MarginTop(1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2).
			Width(50),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}
