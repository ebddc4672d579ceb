package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	key  string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to top/bottom"},
		{"Tab, 1/2", "Switch between All and Popular"},
	}},
	{"Petitions", []helpEntry{
		{"Enter, l", "Open petition"},
		{"Esc, Backspace", "Back to the list"},
		{"p", "Read petition in the pager"},
		{"r", "Reload the current tab"},
	}},
	{"Search", []helpEntry{
		{"/", "Search titles and text"},
		{"c", "Clear search"},
	}},
	{"Other", []helpEntry{
		{"i", "Credits"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// HelpText builds the full key reference
func HelpText(styles *Styles) string {
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			if w := lipgloss.Width(e.key); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(styles.Title.Render("Petitions Help"))
	help.WriteString("\n")
	for i, s := range helpSections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for j, e := range s.entries {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.key))
			help.WriteString(fmt.Sprintf("  %s%s  %s", keyStyle.Render(e.key), pad, descStyle.Render(e.desc)))
			if i < len(helpSections)-1 || j < len(s.entries)-1 {
				help.WriteString("\n")
			}
		}
	}
	return help.String()
}

// renderHelpContent fits the help text into a popup of the given height,
// cutting the tail with an indicator when it does not fit
func (r *Renderer) renderHelpContent(height int) string {
	lines := strings.Split(HelpText(r.styles), "\n")

	// Account for popup border and padding
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
		lines[len(lines)-1] = r.styles.Scroll.Render("↓ more, press p to open in the pager")
	}
	return strings.Join(lines, "\n")
}
