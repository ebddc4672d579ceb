package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"petitions/internal/ui/input/types"
)

const (
	searchPrompt      = "Search Petitions"
	searchPlaceholder = "title or text"
	searchCharLimit   = 256
)

// SearchMode edits the search query in the shared text input. Enter submits
// the query, esc leaves the list as it was.
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

// Prompt returns the label shown above the input
func (m *SearchMode) Prompt() string {
	return searchPrompt
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Placeholder = searchPlaceholder
		m.textInput.CharLimit = searchCharLimit
		m.textInput.Prompt = "" // the popup draws the label
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		return []types.Action{
			types.SubmitTextAction{Text: m.query(), Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		// Unclaimed keys go to the text input
		return nil, false
	}
}

// query is the text to filter by. Blank input means no filter; anything
// else is kept exactly as typed.
func (m *SearchMode) query() string {
	if m.textInput == nil {
		return ""
	}
	text := m.textInput.Value()
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}
