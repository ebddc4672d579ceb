package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petitions/internal/ui/input/types"
)

// NormalMode handles keys on the petition list
type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchTabAction{Index: -1}}, true

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenDetailAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, true
	}

	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < ctx.TabCount() {
			return []types.Action{types.SwitchTabAction{Index: idx}}, true
		}
		return nil, true
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "l":
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenDetailAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, true

	case "/", "s":
		// Search is pointless before anything has loaded
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "c":
		return []types.Action{types.ClearFiltersAction{}}, true

	case "esc":
		if ctx.IsSearching() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "r":
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.ReloadAction{}}, true

	case "i":
		return []types.Action{types.ShowCreditsAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
