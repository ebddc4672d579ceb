package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"petitions/internal/ui/input/types"
)

// DetailMode handles keys while a petition is pushed on top of the list
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "backspace", "h", "left":
		return []types.Action{
			types.CloseDetailAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "pgup", "b":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case "pgdown", " ", "f":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case "home", "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "p":
		return []types.Action{types.OpenPagerAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, true
}
