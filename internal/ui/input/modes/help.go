package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"petitions/internal/ui/input/types"
)

// HelpMode shows the key reference; any key closes it
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "p":
		return []types.Action{types.OpenPagerAction{}}, true
	}
	return []types.Action{types.ToggleHelpAction{}}, true
}
