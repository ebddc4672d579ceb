package screens

import (
	"context"

	"petitions/internal/domain"
	"petitions/internal/petitions"
	"petitions/internal/ui/logic"
)

// ListScreen owns one feed: the full list, the current filter and the
// dialogs that belong to it.
//
// When searching is false the full list is authoritative; when true the
// filtered list is, and it is recomputed from scratch on every query.
type ListScreen struct {
	Chrome

	mode             domain.Mode
	fetcher          petitions.Fetcher
	collapseOnScroll bool

	full      []domain.Petition
	filtered  []domain.Petition
	searching bool
	query     string

	loaded  bool
	loading bool
	failed  bool
	err     error
}

// NewListScreen creates the screen for one mode.
func NewListScreen(mode domain.Mode, fetcher petitions.Fetcher, hideOnScroll bool) *ListScreen {
	return &ListScreen{
		mode:             mode,
		fetcher:          fetcher,
		collapseOnScroll: hideOnScroll,
	}
}

// Mode returns which feed the screen shows.
func (s *ListScreen) Mode() domain.Mode { return s.mode }

// Title implements Screen.
func (s *ListScreen) Title() string { return s.mode.Label() }

// OnLoad implements Screen. Fetching needs a context and a way to hand the
// result back, so the UI calls Load instead; OnLoad only marks the screen
// as initialised.
func (s *ListScreen) OnLoad() {
	s.loaded = true
}

// OnShow implements Screen.
func (s *ListScreen) OnShow() { s.show(s.collapseOnScroll) }

// OnHide implements Screen.
func (s *ListScreen) OnHide() { s.hide() }

// NeedsLoad reports whether the screen has never started a fetch.
func (s *ListScreen) NeedsLoad() bool { return !s.loaded }

// Load starts a background fetch. The caller must read the single Result
// from the channel on its own task and pass it to Loaded.
func (s *ListScreen) Load(ctx context.Context) <-chan petitions.Result {
	s.OnLoad()
	s.loading = true
	s.err = nil
	return petitions.Start(ctx, s.fetcher, s.mode)
}

// Loaded applies a finished fetch. Success replaces the full list
// wholesale and re-applies any active query; failure leaves the list as
// it was and records the error for the dialog.
func (s *ListScreen) Loaded(res petitions.Result) {
	s.loading = false
	s.failed = res.Err != nil
	if res.Err != nil {
		s.err = res.Err
		return
	}
	s.err = nil
	s.full = res.Petitions
	if s.searching {
		s.filtered, s.searching = logic.FilterPetitions(s.query, s.full)
	}
}

// Loading reports whether a fetch is in flight.
func (s *ListScreen) Loading() bool { return s.loading }

// Err returns the last load failure, if any.
func (s *ListScreen) Err() error { return s.err }

// Failed reports whether the last fetch failed. It stays set after the
// error dialog is dismissed, until a fetch succeeds.
func (s *ListScreen) Failed() bool { return s.failed }

// DismissError clears the loading error after the dialog is closed.
func (s *ListScreen) DismissError() { s.err = nil }

// Search filters by text. Empty text turns searching off.
func (s *ListScreen) Search(text string) {
	s.query = text
	s.filtered, s.searching = logic.FilterPetitions(text, s.full)
}

// Clear drops the filter. Calling it while not searching changes nothing.
func (s *ListScreen) Clear() {
	s.searching = false
	s.filtered = nil
	s.query = ""
}

// Searching reports whether the filtered list is displayed.
func (s *ListScreen) Searching() bool { return s.searching }

// Query returns the active search text.
func (s *ListScreen) Query() string { return s.query }

// All returns the full list.
func (s *ListScreen) All() []domain.Petition { return s.full }

// Rows returns the list currently displayed.
func (s *ListScreen) Rows() []domain.Petition {
	if s.searching {
		return s.filtered
	}
	return s.full
}

// Len returns the number of displayed rows.
func (s *ListScreen) Len() int { return len(s.Rows()) }

// Select returns the petition at a displayed row. It indexes the list
// that is on screen, so a selection made while filtering opens the
// petition the user actually sees.
func (s *ListScreen) Select(row int) (domain.Petition, bool) {
	rows := s.Rows()
	if row < 0 || row >= len(rows) {
		return domain.Petition{}, false
	}
	return rows[row], true
}
