package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"petitions/internal/domain"
	"petitions/internal/render"
	"petitions/internal/ui/logic"
)

// RowLines is the height of one petition row: title, then a body summary
const RowLines = 2

// PetitionRenderer handles rendering of petition rows
type PetitionRenderer struct {
	styles    *Styles
	summaries map[string]string // body -> single line plain text
}

// NewPetitionRenderer creates a new petition renderer
func NewPetitionRenderer(styles *Styles) *PetitionRenderer {
	return &PetitionRenderer{
		styles:    styles,
		summaries: make(map[string]string),
	}
}

// RenderPetition renders one list row: the title on a single line and the
// body as a dim summary line under it, both cut to width, with search
// matches highlighted.
func (r *PetitionRenderer) RenderPetition(p domain.Petition, isSelected bool, searchQuery string, width int) string {
	normal := lipgloss.NewStyle()
	highlight := r.styles.Highlight
	summary := r.styles.Dim
	if isSelected {
		bg := r.styles.SelectionBg.GetBackground()
		normal = r.styles.SelectionBg
		highlight = highlight.Background(bg)
		summary = summary.Background(bg)
	}

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}

	title := singleLine(p.Title)
	if title == "" {
		title = "(untitled)"
	}
	body := r.summary(p.Body)
	if width > 0 {
		avail := width - runewidth.StringWidth(cursor)
		title = runewidth.Truncate(title, avail, "…")
		body = runewidth.Truncate(body, avail, "…")
	}

	titleLine := normal.Render(cursor) + r.highlightMatches(title, searchQuery, highlight, normal)
	bodyLine := normal.Render("  ") + r.highlightMatches(body, searchQuery, highlight, summary)
	if isSelected && width > 0 {
		// Extend the selection bar to the full row
		titleLine = padTo(titleLine, width, normal)
		bodyLine = padTo(bodyLine, width, normal)
	}
	return titleLine + "\n" + bodyLine
}

// summary returns the body as one line of plain text. Bodies are HTML, so
// the markup is dropped the same way the detail page drops it.
func (r *PetitionRenderer) summary(body string) string {
	if s, ok := r.summaries[body]; ok {
		return s
	}
	s := body
	if text, err := render.Text(render.Document(body), 0); err == nil {
		s = text
	}
	s = singleLine(s)
	r.summaries[body] = s
	return s
}

// highlightMatches highlights every occurrence of query within text
func (r *PetitionRenderer) highlightMatches(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	ranges := logic.HighlightRanges(text, query)
	if len(ranges) == 0 {
		return normalStyle.Render(text)
	}

	var b strings.Builder
	last := 0
	for _, rg := range ranges {
		if rg[0] > last {
			b.WriteString(normalStyle.Render(text[last:rg[0]]))
		}
		b.WriteString(highlightStyle.Render(text[rg[0]:rg[1]]))
		last = rg[1]
	}
	if last < len(text) {
		b.WriteString(normalStyle.Render(text[last:]))
	}
	return b.String()
}

func padTo(line string, width int, style lipgloss.Style) string {
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += style.Render(strings.Repeat(" ", pad))
	}
	return line
}

// singleLine folds any line breaks in a title into spaces
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
