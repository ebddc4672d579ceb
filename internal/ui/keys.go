package ui

import "github.com/charmbracelet/bubbles/key"

// listKeys is the footer key summary on the petition list
type listKeys struct {
	Up, Down, Open, Search, Clear, Tab, Reload, Credits, Help, Quit key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "open")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Tab:     key.NewBinding(key.WithKeys("tab", "1", "2"), key.WithHelp("tab", "switch tab")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Credits: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "credits")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Clear, k.Tab, k.Reload, k.Credits, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Tab},
		{k.Search, k.Clear, k.Reload},
		{k.Credits, k.Help, k.Quit},
	}
}

// detailKeys is the footer key summary on a petition
type detailKeys struct {
	Scroll, Page, Back, Pager, Help, Quit key.Binding
}

func newDetailKeys() detailKeys {
	return detailKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑↓/jk", "scroll")),
		Page:   key.NewBinding(key.WithKeys("pgup", "pgdown", " "), key.WithHelp("pgup/pgdn", "page")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Pager:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pager")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Page, k.Back, k.Pager, k.Help, k.Quit}
}

func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Page}, {k.Back, k.Pager}, {k.Help, k.Quit}}
}
