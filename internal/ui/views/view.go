package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"petitions/internal/domain"
	"petitions/internal/ui/logic"
)

// Dialog is an alert with a single dismiss button
type Dialog struct {
	Title   string
	Message string
	Button  string
}

// DetailView is the pushed petition screen
type DetailView struct {
	Title         string
	Body          string // already laid out by the viewport
	ScrollPercent float64
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Tabs      []TabView
	Collapsed bool
	Spinner   string

	Rows          []domain.Petition
	SelectedIndex int
	VisibleStart  int
	VisibleEnd    int
	Indicators    logic.Indicators
	Loading       bool
	LoadFailed    bool
	Query         string
	Searching     bool

	InputMode   string
	InputPrompt string
	TextInput   string

	Detail *DetailView
	Dialog *Dialog

	ShowHelp      bool
	StatusMessage string
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rowRender   *PetitionRenderer
	tabRender   *TabRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		rowRender:   NewPetitionRenderer(styles),
		tabRender:   NewTabRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the style set, e.g. for the pager's help text
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.Detail != nil {
		r.renderDetail(content, state)
	} else {
		r.renderList(content, state)
	}

	footer := state.StatusMessage
	if footer == "" && state.Keys != nil {
		footer = state.HelpModel.View(state.Keys)
	}
	if state.Detail != nil {
		footer = fmt.Sprintf("%s  %s", r.styles.Status.Render(fmt.Sprintf("%3.f%%", state.Detail.ScrollPercent*100)), footer)
	}

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - mainPadding
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n\n")
	content.WriteString(r.styles.Help.Render(footer))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	switch {
	case state.Dialog != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderDialog(state.Dialog), state.Height, state.Width, r.styles.DialogBox)
	case state.InputMode != "":
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderInput(state), state.Height, state.Width, r.styles.InputBox)
	case state.ShowHelp:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(state.Height), state.Height, state.Width, r.styles.HelpBox)
	}
	return finalContent
}

func (r *Renderer) renderList(content *strings.Builder, state ViewState) {
	width := ContentWidth(state.Width)

	if !state.Collapsed {
		logo := r.styles.Title.Render("We The People")
		right := ""
		if state.Loading {
			right = r.styles.Spinner.Render(state.Spinner + " Loading")
		}
		content.WriteString(alignRight(logo, right, width))
		content.WriteString("\n")
		content.WriteString(r.tabRender.RenderTabs(state.Tabs, r.styles.Spinner.Render(state.Spinner)))
		content.WriteString("\n\n")
	}

	if state.Searching {
		banner := fmt.Sprintf("Search: %q · %d matches · c to clear", state.Query, len(state.Rows))
		content.WriteString(r.styles.Filter.Render(runewidth.Truncate(banner, width, "…")))
		content.WriteString("\n")
	}

	switch {
	case len(state.Rows) == 0 && state.Loading:
		content.WriteString(r.styles.Spinner.Render(state.Spinner) + r.styles.Dim.Render(" Loading petitions..."))
	case len(state.Rows) == 0 && state.LoadFailed:
		content.WriteString(r.styles.Error.Render("Petitions could not be loaded. Press r to try again."))
	case len(state.Rows) == 0 && state.Searching:
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No petitions match %q.", state.Query)))
	case len(state.Rows) == 0:
		content.WriteString(r.styles.Dim.Render("No petitions."))
	default:
		content.WriteString(r.renderRows(state, width))
	}
}

// renderRows renders the visible window of the list with scroll indicators
func (r *Renderer) renderRows(state ViewState, width int) string {
	var lines []string

	if state.Indicators.Up {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.VisibleStart)))
	}

	end := state.VisibleEnd
	if end > len(state.Rows) {
		end = len(state.Rows)
	}
	for i := state.VisibleStart; i < end; i++ {
		lines = append(lines, r.rowRender.RenderPetition(state.Rows[i], i == state.SelectedIndex, state.Query, width))
	}

	if state.Indicators.Down {
		below := len(state.Rows) - end
		if below < 0 {
			below = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderDetail(content *strings.Builder, state ViewState) {
	if !state.Collapsed {
		title := runewidth.Truncate(singleLine(state.Detail.Title), ContentWidth(state.Width), "…")
		content.WriteString(r.styles.DetailTitle.Render(title))
		content.WriteString("\n\n")
	}
	content.WriteString(state.Detail.Body)
}

// renderDialog lays the dialog out at the box's inner width so the box never
// rewraps it: the message wraps, title and button are centred on their own
// lines.
func (r *Renderer) renderDialog(d *Dialog) string {
	inner := r.styles.DialogBox.GetWidth() - r.styles.DialogBox.GetHorizontalPadding()
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, s)
	}
	message := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(d.Message)
	return lipgloss.JoinVertical(lipgloss.Left,
		center(r.styles.DialogTitle.Render(d.Title)),
		message,
		center(r.styles.Button.Render(d.Button)),
	)
}

func (r *Renderer) renderInput(state ViewState) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.DialogTitle.Render(state.InputPrompt),
		state.TextInput,
		r.styles.Dim.Render("Enter to search · Esc to cancel"),
	)
}

// alignRight places right at the far end of a line that starts with left
func alignRight(left, right string, width int) string {
	if right == "" {
		return left
	}
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}
