package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"petitions/internal/config"
	"petitions/internal/domain"
	"petitions/internal/petitions"
	"petitions/internal/screens"
	"petitions/internal/ui/input"
	inputtypes "petitions/internal/ui/input/types"
	"petitions/internal/ui/logic"
	"petitions/internal/ui/views"
)

// tab pairs one feed with its cursor
type tab struct {
	screen    *screens.ListScreen
	navigator *logic.Navigator
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	logger *zap.Logger

	width         int
	height        int
	help          help.Model
	spinner       spinner.Model
	listKeys      listKeys
	detailKeys    detailKeys
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode

	tabs   []*tab
	active int

	// Pushed petition, nil while the list is on top
	detail   *screens.DetailScreen
	viewport viewport.Model

	dialog     *dialog
	showHelp   bool
	helpReturn inputtypes.Mode // mode to go back to when help closes

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model with one tab per feed
func NewModel(ctx context.Context, cfg *config.Config, fetcher petitions.Fetcher, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		logger:       logger,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		listKeys:     newListKeys(),
		detailKeys:   newDetailKeys(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}

	start := cfg.StartMode()
	for i, mode := range domain.Modes {
		m.tabs = append(m.tabs, &tab{
			screen:    screens.NewListScreen(mode, fetcher, cfg.UI.CompactOnScroll),
			navigator: logic.NewNavigator(),
		})
		if mode == start {
			m.active = i
		}
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// Init shows the start tab, which kicks off its first load
func (m *Model) Init() tea.Cmd {
	return m.showTab(m.active)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = views.ContentWidth(msg.Width)
		m.resizeList()
		m.layoutDetail(true)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case loadResultMsg:
		return m, m.handleLoadResult(msg)

	case spinner.TickMsg:
		// Let the tick loop die once nothing is loading
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			m.statusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
			return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	// Cursor blink and friends belong to the text input
	return m, m.inputHandler.Update(msg)
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	t := m.activeTab()
	start, end, ind := t.navigator.VisibleRange()

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Tabs:          m.tabViews(),
		Collapsed:     t.screen.Collapsed(),
		Spinner:       m.spinner.View(),
		Rows:          t.screen.Rows(),
		SelectedIndex: t.navigator.GetSelectedIndex(),
		VisibleStart:  start,
		VisibleEnd:    end,
		Indicators:    ind,
		Loading:       t.screen.Loading(),
		LoadFailed:    t.screen.Failed(),
		Query:         t.screen.Query(),
		Searching:     t.screen.Searching(),
		ShowHelp:      m.showHelp,
		StatusMessage: m.statusMessage,
		HelpModel:     m.help,
		Keys:          m.listKeys,
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		state.InputMode = inputtypes.ModeSearch.String()
		state.InputPrompt = m.inputHandler.Prompt()
		if ti := m.inputHandler.TextInput(); ti != nil {
			state.TextInput = ti.View()
		}
	}

	if m.detail != nil {
		state.Collapsed = m.detail.Collapsed()
		state.Keys = m.detailKeys
		state.Detail = &views.DetailView{
			Title:         m.detail.Title(),
			Body:          m.viewport.View(),
			ScrollPercent: m.viewport.ScrollPercent(),
		}
	}

	if m.dialog != nil {
		d := m.dialog.view
		state.Dialog = &d
	}

	return state
}

func (m *Model) tabViews() []views.TabView {
	out := make([]views.TabView, len(m.tabs))
	for i, t := range m.tabs {
		out[i] = views.TabView{
			Label:   t.screen.Title(),
			Active:  i == m.active,
			Loading: t.screen.Loading(),
			Loaded:  !t.screen.NeedsLoad() && !t.screen.Loading() && !t.screen.Failed(),
			Count:   len(t.screen.All()),
		}
	}
	return out
}

func (m *Model) activeTab() *tab {
	return m.tabs[m.active]
}

func (m *Model) anyLoading() bool {
	for _, t := range m.tabs {
		if t.screen.Loading() {
			return true
		}
	}
	return false
}

func (m *Model) inputContext() *input.ModelContext {
	t := m.activeTab()
	return &input.ModelContext{
		Screen:    t.screen,
		Navigator: t.navigator,
		Tabs:      len(m.tabs),
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inPagerMode {
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	cmds = append(cmds, m.maybeShowLoadError())
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.detail != nil {
			m.scrollDetail(a.Direction)
		} else {
			m.navigateList(a.Direction)
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			t := m.activeTab()
			t.screen.Search(a.Text)
			t.navigator.Reset()
			m.resizeList()
			m.logger.Debug("search", zap.String("query", a.Text), zap.Int("matches", t.screen.Len()))
		}

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// Search runs on submit only

	case inputtypes.ClearFiltersAction:
		t := m.activeTab()
		if t.screen.Searching() {
			t.screen.Clear()
			t.navigator.Reset()
			m.resizeList()
		}

	case inputtypes.ReloadAction:
		if !m.activeTab().screen.Loading() {
			return m.startLoad(m.active)
		}

	case inputtypes.SwitchTabAction:
		idx := a.Index
		if idx < 0 {
			idx = (m.active + 1) % len(m.tabs)
		}
		if idx >= len(m.tabs) || idx == m.active {
			return nil
		}
		return m.showTab(idx)

	case inputtypes.OpenDetailAction:
		return m.openDetail(a.Index)

	case inputtypes.CloseDetailAction:
		m.closeDetail()

	case inputtypes.OpenPagerAction:
		if m.showHelp {
			return m.openPager(views.HelpText(m.renderer.Styles()))
		}
		if m.detail != nil {
			text, err := m.detail.Text(0)
			if err != nil {
				text = m.detail.Petition().Body
			}
			return m.openPager(pagerDocument(m.detail.Title(), text))
		}

	case inputtypes.ShowCreditsAction:
		return m.openDialog(creditsDialog())

	case inputtypes.DismissDialogAction:
		if m.dialog != nil && m.dialog.kind == dialogLoadError {
			m.activeTab().screen.DismissError()
		}
		m.dialog = nil

	case inputtypes.ToggleHelpAction:
		if m.showHelp {
			m.showHelp = false
			return m.changeMode(m.helpReturn)
		}
		m.helpReturn = m.inputHandler.CurrentMode()
		m.showHelp = true
		return m.changeMode(inputtypes.ModeHelp)

	case inputtypes.QuitAction:
		m.logger.Info("quitting", zap.Bool("forced", a.Force))
		return tea.Quit
	}

	return nil
}

// changeMode switches the input mode from model code and runs whatever the
// mode hooks ask for
func (m *Model) changeMode(mode inputtypes.Mode) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range m.inputHandler.ChangeMode(mode, m.inputContext()) {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// showTab makes a tab current. Each tab loads lazily the first time it is
// shown.
func (m *Model) showTab(idx int) tea.Cmd {
	if idx != m.active {
		m.activeTab().screen.OnHide()
	}
	m.active = idx

	t := m.activeTab()
	t.screen.OnShow()
	t.screen.Scrolled(t.navigator.GetViewportOffset() == 0)
	m.resizeList()

	if t.screen.NeedsLoad() {
		return m.startLoad(idx)
	}
	return nil
}

// startLoad begins a background fetch for a tab. The result comes back as
// a loadResultMsg on the UI task.
func (m *Model) startLoad(idx int) tea.Cmd {
	t := m.tabs[idx]
	m.logger.Info("loading petitions", zap.Stringer("mode", t.screen.Mode()))
	results := t.screen.Load(m.ctx)
	return tea.Batch(waitForResult(idx, results), m.spinner.Tick)
}

// waitForResult reads the single result of a background fetch
func waitForResult(idx int, results <-chan petitions.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return loadResultMsg{tab: idx, result: res}
	}
}

func (m *Model) handleLoadResult(msg loadResultMsg) tea.Cmd {
	if msg.tab < 0 || msg.tab >= len(m.tabs) {
		return nil
	}
	t := m.tabs[msg.tab]
	t.screen.Loaded(msg.result)
	t.navigator.SetTotal(t.screen.Len())

	if msg.result.Err != nil {
		m.logger.Warn("loading petitions failed",
			zap.Stringer("mode", msg.result.Mode),
			zap.Error(msg.result.Err))
	} else {
		m.logger.Info("petitions loaded",
			zap.Stringer("mode", msg.result.Mode),
			zap.Int("count", len(msg.result.Petitions)))
	}

	if msg.tab == m.active {
		m.resizeList()
	}
	return m.maybeShowLoadError()
}

// maybeShowLoadError opens the loading error dialog for the current tab
// once nothing else is on top of the list
func (m *Model) maybeShowLoadError() tea.Cmd {
	if m.dialog != nil || m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		return nil
	}
	if m.activeTab().screen.Err() == nil {
		return nil
	}
	return m.openDialog(loadErrorDialog())
}

func (m *Model) openDialog(d *dialog) tea.Cmd {
	m.dialog = d
	return m.changeMode(inputtypes.ModeDialog)
}

func (m *Model) navigateList(direction string) {
	t := m.activeTab()
	nav := t.navigator
	switch direction {
	case "up":
		nav.Move(-1)
	case "down":
		nav.Move(1)
	case "pageup":
		nav.PageUp()
	case "pagedown":
		nav.PageDown()
	case "home":
		nav.Top()
	case "end":
		nav.Bottom()
	}
	t.screen.Scrolled(nav.GetViewportOffset() == 0)
	m.resizeList()
}

// resizeList fits the active tab's cursor to the current terminal and list
func (m *Model) resizeList() {
	t := m.activeTab()
	t.navigator.SetTotal(t.screen.Len())
	t.navigator.SetViewportHeight(views.ListHeight(m.height, t.screen.Collapsed(), t.screen.Searching()))
}

func (m *Model) openDetail(row int) tea.Cmd {
	t := m.activeTab()
	p, ok := t.screen.Select(row)
	if !ok {
		return nil
	}

	d := screens.NewDetailScreen(p, m.config.UI.CompactOnScroll)
	d.OnLoad()
	t.screen.OnHide()
	d.OnShow()
	m.detail = d

	m.viewport = viewport.New(views.ContentWidth(m.width), views.DetailHeight(m.height, false))
	m.layoutDetail(true)
	return m.changeMode(inputtypes.ModeDetail)
}

func (m *Model) closeDetail() {
	if m.detail == nil {
		return
	}
	m.detail.OnHide()
	m.detail = nil

	t := m.activeTab()
	t.screen.OnShow()
	t.screen.Scrolled(t.navigator.GetViewportOffset() == 0)
	m.resizeList()
}

// layoutDetail sizes the detail viewport and, when rerender is set, lays the
// petition text out again for the current width
func (m *Model) layoutDetail(rerender bool) {
	if m.detail == nil {
		return
	}
	width := views.ContentWidth(m.width)
	m.viewport.Width = width
	m.viewport.Height = views.DetailHeight(m.height, m.detail.Collapsed())
	if !rerender {
		return
	}

	text, err := m.detail.Text(width)
	if err != nil {
		m.logger.Warn("rendering petition failed", zap.Error(err))
		text = m.detail.Petition().Body
	}
	m.viewport.SetContent(text)
}

func (m *Model) scrollDetail(direction string) {
	switch direction {
	case "up":
		m.viewport.ScrollUp(1)
	case "down":
		m.viewport.ScrollDown(1)
	case "pageup":
		m.viewport.ScrollUp(m.viewport.Height)
	case "pagedown":
		m.viewport.ScrollDown(m.viewport.Height)
	case "home":
		m.viewport.GotoTop()
	case "end":
		m.viewport.GotoBottom()
	}
	m.detail.Scrolled(m.viewport.AtTop())
	m.layoutDetail(false)
}

// openPager returns a command that shows content in ov, pausing rendering
// while ov owns the terminal
func (m *Model) openPager(content string) tea.Cmd {
	program, pager := m.program, m.pager
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{err: fmt.Errorf("program not set")}
		}
		program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}
