package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"petitions/internal/ui/input/types"
)

// DialogMode handles an alert with a single dismiss button
type DialogMode struct{}

func NewDialogMode() *DialogMode {
	return &DialogMode{}
}

func (m *DialogMode) Name() string {
	return "dialog"
}

func (m *DialogMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter", "esc", " ", "o", "O", "q":
		return []types.Action{
			types.DismissDialogAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// Swallow everything else while the dialog is up
	return nil, true
}
