package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// TabView is what the tab strip needs to know about one tab
type TabView struct {
	Label   string
	Active  bool
	Loading bool
	Count   int
	Loaded  bool
}

// TabRenderer draws the tab strip
type TabRenderer struct {
	styles *Styles
}

// NewTabRenderer creates a new tab renderer
func NewTabRenderer(styles *Styles) *TabRenderer {
	return &TabRenderer{styles: styles}
}

// RenderTabs renders "[1] Label (n)" entries side by side
func (r *TabRenderer) RenderTabs(tabs []TabView, spinner string) string {
	rendered := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("[%d] %s", i+1, t.Label)
		switch {
		case t.Loading && spinner != "":
			label = fmt.Sprintf("%s %s", label, spinner)
		case t.Loaded:
			label = fmt.Sprintf("%s (%d)", label, t.Count)
		}

		style := r.styles.TabInactive
		if t.Active {
			style = r.styles.TabActive
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
