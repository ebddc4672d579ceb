package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petitions/internal/domain"
)

func rowLines(t *testing.T, row string) []string {
	t.Helper()
	lines := strings.Split(StripANSI(row), "\n")
	require.Len(t, lines, RowLines)
	return lines
}

func TestRenderPetitionFoldsAndTruncatesTitle(t *testing.T) {
	r := NewPetitionRenderer(NewStyles())

	lines := rowLines(t, r.RenderPetition(domain.Petition{Title: "Fix\nthe   roads"}, false, "", 0))
	assert.Equal(t, "  Fix the roads", lines[0])
	assert.Equal(t, "  ", lines[1])

	long := domain.Petition{Title: strings.Repeat("word ", 40), Body: strings.Repeat("more ", 40)}
	for _, line := range rowLines(t, r.RenderPetition(long, false, "", 30)) {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
		assert.True(t, strings.HasSuffix(line, "…"))
	}
}

func TestRenderPetitionShowsBodySummary(t *testing.T) {
	r := NewPetitionRenderer(NewStyles())
	p := domain.Petition{Title: "Tax Reform", Body: "<p>Simplify</p><p>the <b>tax</b> code</p>"}

	lines := rowLines(t, r.RenderPetition(p, false, "simplify", 60))
	assert.Equal(t, "  Tax Reform", lines[0])
	assert.Equal(t, "  Simplify the tax code", lines[1], "markup dropped and folded to one line")
}

func TestRenderPetitionSelection(t *testing.T) {
	r := NewPetitionRenderer(NewStyles())

	lines := rowLines(t, r.RenderPetition(domain.Petition{Title: "Tax Reform", Body: "Simplify taxes"}, true, "tax", 40))
	assert.True(t, strings.HasPrefix(lines[0], "▸ Tax Reform"))
	assert.True(t, strings.HasPrefix(lines[1], "  Simplify taxes"))
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line), "selection bar spans the row")
	}

	lines = rowLines(t, r.RenderPetition(domain.Petition{}, false, "", 40))
	assert.Equal(t, "  (untitled)", lines[0])
}

func TestRenderListShowsBodyOfBodyOnlyMatch(t *testing.T) {
	r := NewRenderer()

	out := StripANSI(r.Render(ViewState{
		Width: 100, Height: 30,
		Tabs:       []TabView{{Label: "Most Recent", Active: true, Loaded: true, Count: 2}},
		Rows:       []domain.Petition{{Title: "Tax Reform", Body: "Simplify taxes"}},
		VisibleEnd: 1,
		Query:      "simplify",
		Searching:  true,
	}))
	assert.Contains(t, out, "Tax Reform")
	assert.Contains(t, out, "Simplify taxes")
}

func TestRenderTabs(t *testing.T) {
	r := NewTabRenderer(NewStyles())

	out := StripANSI(r.RenderTabs([]TabView{
		{Label: "Most Recent", Active: true, Loaded: true, Count: 7},
		{Label: "Top Rated", Loading: true},
	}, "*"))
	assert.Contains(t, out, "[1] Most Recent (7)")
	assert.Contains(t, out, "[2] Top Rated *")
}

func TestLayoutHeights(t *testing.T) {
	assert.Equal(t, 11, ListHeight(30, false, false))
	assert.Equal(t, 13, ListHeight(30, true, false))
	assert.Equal(t, 11, ListHeight(30, false, true))
	assert.Equal(t, 9, ListHeight(27, false, true))
	assert.Equal(t, 1, ListHeight(3, false, true))

	assert.Equal(t, 24, DetailHeight(30, false))
	assert.Equal(t, 26, DetailHeight(30, true))

	assert.Equal(t, 96, ContentWidth(100))
	assert.Equal(t, 10, ContentWidth(8))
}

func TestPopupOverlayKeepsHeightAndCentres(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	main := strings.Join([]string{"one", "two", "three", "four", "five", "six", "seven"}, "\n")

	out := pr.RenderPopupOverlay(main, "HI", 7, 20, lipgloss.NewStyle())
	lines := strings.Split(StripANSI(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "one", lines[0])
	assert.Contains(t, lines[3], "HI")
	assert.Equal(t, "seven", lines[6])
}

func TestRenderLoadFailedAndEmptySearch(t *testing.T) {
	r := NewRenderer()

	out := StripANSI(r.Render(ViewState{
		Width: 80, Height: 20,
		Tabs:       []TabView{{Label: "Most Recent", Active: true}},
		LoadFailed: true,
	}))
	assert.Contains(t, out, "We The People")
	assert.Contains(t, out, "could not be loaded")

	out = StripANSI(r.Render(ViewState{
		Width: 80, Height: 20,
		Tabs:      []TabView{{Label: "Most Recent", Active: true, Loaded: true}},
		Query:     "zebra",
		Searching: true,
	}))
	assert.Contains(t, out, `No petitions match "zebra".`)
	assert.Contains(t, out, `Search: "zebra"`)
}

func TestRenderDialogOverList(t *testing.T) {
	r := NewRenderer()

	out := StripANSI(r.Render(ViewState{
		Width: 80, Height: 20,
		Tabs: []TabView{{Label: "Most Recent", Active: true, Loaded: true, Count: 1}},
		Rows: []domain.Petition{{Title: "Road Repair"}}, VisibleEnd: 1,
		Dialog: &Dialog{
			Title:   "Credits",
			Message: "The contents of this app",
			Button:  "Continue",
		},
	}))
	assert.Contains(t, out, "Credits")
	assert.Contains(t, out, "Continue")
}

func TestHelpTextListsSections(t *testing.T) {
	text := StripANSI(HelpText(NewStyles()))
	for _, s := range []string{"Petitions Help", "Navigation", "Search", "Other"} {
		assert.Contains(t, text, s)
	}
}

func TestRenderDialogKeepsTitleOnOneLine(t *testing.T) {
	r := NewRenderer()
	const message = "There was a problem loading the feed; please check your connection and try again."

	out := StripANSI(r.Render(ViewState{
		Width: 100, Height: 30,
		Tabs: []TabView{{Label: "Most Recent", Active: true}},
		Dialog: &Dialog{
			Title:   "Loading error",
			Message: message,
			Button:  "OK",
		},
	}))

	assert.Contains(t, out, "Loading error")
	assert.Contains(t, out, "OK")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}

	// The message wraps inside the box and nothing of it is lost
	var words []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "│") {
			inner := strings.Trim(strings.TrimSpace(line), "│")
			words = append(words, strings.Fields(inner)...)
		}
	}
	assert.Contains(t, strings.Join(words, " "), message)
}
