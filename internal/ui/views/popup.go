package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres a popup over a greyed out copy of the main
// content. Lines of the main content outside the popup's rows stay visible.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	modalH := lipgloss.Height(styledPopup)
	if modalH > height {
		modalH = height
	}
	top := (height - modalH) / 2

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	popupLines := strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, styledPopup), "\n")
	for i := 0; i < modalH && i < len(popupLines); i++ {
		base[top+i] = popupLines[i]
	}
	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		plain := ansiRE.ReplaceAllString(line, "")
		if plain == "" {
			lines[i] = ""
			continue
		}
		lines[i] = grey.Render(plain)
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes colour codes, for tests and plain text output
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
