package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// List actions
type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type SwitchTabAction struct {
	Index int // -1 cycles to the next tab
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type OpenDetailAction struct {
	Index int // displayed row
}

func (a OpenDetailAction) Type() string { return "open_detail" }

// Detail actions
type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Dialog actions
type ShowCreditsAction struct{}

func (a ShowCreditsAction) Type() string { return "show_credits" }

type DismissDialogAction struct{}

func (a DismissDialogAction) Type() string { return "dismiss_dialog" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
