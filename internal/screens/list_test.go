package screens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petitions/internal/domain"
	"petitions/internal/petitions"
)

type fakeFetcher struct {
	payload string
	err     error
	modes   chan domain.Mode
}

func (f *fakeFetcher) Fetch(ctx context.Context, mode domain.Mode) ([]byte, error) {
	if f.modes != nil {
		f.modes <- mode
	}
	return []byte(f.payload), f.err
}

const twoPetitions = `{"results":[
	{"title":"Climate Action","body":"Reduce emissions now"},
	{"title":"Tax Reform","body":"Simplify taxes"}
]}`

func loadedScreen(t *testing.T) *ListScreen {
	t.Helper()
	s := NewListScreen(domain.ModeAll, &fakeFetcher{payload: twoPetitions}, true)
	s.Loaded(waitResult(t, s.Load(context.Background())))
	require.NoError(t, s.Err())
	return s
}

func waitResult(t *testing.T, ch <-chan petitions.Result) petitions.Result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for load")
		return petitions.Result{}
	}
}

func TestLoadPopulatesFullList(t *testing.T) {
	f := &fakeFetcher{payload: twoPetitions, modes: make(chan domain.Mode, 1)}
	s := NewListScreen(domain.ModePopular, f, false)
	require.True(t, s.NeedsLoad())

	ch := s.Load(context.Background())
	assert.True(t, s.Loading())
	assert.False(t, s.NeedsLoad())

	s.Loaded(waitResult(t, ch))
	assert.Equal(t, domain.ModePopular, <-f.modes)
	assert.False(t, s.Loading())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Top Rated", s.Title())
}

func TestLoadFailureKeepsListEmptyAndReportsError(t *testing.T) {
	s := NewListScreen(domain.ModeAll, &fakeFetcher{err: errors.New("offline")}, false)
	s.Loaded(waitResult(t, s.Load(context.Background())))

	require.Error(t, s.Err())
	assert.ErrorIs(t, s.Err(), petitions.ErrLoading)
	assert.Zero(t, s.Len())

	s.DismissError()
	assert.NoError(t, s.Err())
	assert.True(t, s.Failed())
}

func TestMalformedPayloadYieldsNoPartialList(t *testing.T) {
	payload := `{"results":[{"title":"ok","body":"fine"},{"title":2,"body":"bad"}]}`
	s := NewListScreen(domain.ModeAll, &fakeFetcher{payload: payload}, false)
	s.Loaded(waitResult(t, s.Load(context.Background())))

	assert.ErrorIs(t, s.Err(), petitions.ErrLoading)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.All())
}

func TestSearchScenario(t *testing.T) {
	s := loadedScreen(t)

	s.Search("tax")
	require.True(t, s.Searching())
	assert.Equal(t, []domain.Petition{{Title: "Tax Reform", Body: "Simplify taxes"}}, s.Rows())

	s.Search("")
	assert.False(t, s.Searching())
	assert.Equal(t, []domain.Petition{
		{Title: "Climate Action", Body: "Reduce emissions now"},
		{Title: "Tax Reform", Body: "Simplify taxes"},
	}, s.Rows())
}

func TestClearWhenNotSearchingIsNoOp(t *testing.T) {
	s := loadedScreen(t)
	before := append([]domain.Petition(nil), s.Rows()...)

	s.Clear()
	assert.False(t, s.Searching())
	assert.Equal(t, before, s.Rows())

	s.Search("climate")
	require.Equal(t, 1, s.Len())
	s.Clear()
	s.Clear()
	assert.Equal(t, before, s.Rows())
	assert.Empty(t, s.Query())
}

func TestSelectUsesDisplayedList(t *testing.T) {
	s := loadedScreen(t)
	s.Search("tax")

	p, ok := s.Select(0)
	require.True(t, ok)
	assert.Equal(t, "Tax Reform", p.Title)

	_, ok = s.Select(1)
	assert.False(t, ok)
	_, ok = s.Select(-1)
	assert.False(t, ok)
}

func TestSearchMatchingNothingShowsEmptyList(t *testing.T) {
	s := loadedScreen(t)
	s.Search("nothing matches this")
	assert.True(t, s.Searching())
	assert.Zero(t, s.Len())
}

func TestReloadReappliesActiveQuery(t *testing.T) {
	f := &fakeFetcher{payload: twoPetitions}
	s := NewListScreen(domain.ModeAll, f, false)
	s.Loaded(waitResult(t, s.Load(context.Background())))
	s.Search("emissions")
	require.Equal(t, 1, s.Len())

	f.payload = `{"results":[{"title":"Clean Air","body":"cut emissions"},{"title":"Roads","body":"fix them"},{"title":"Emissions caps","body":""}]}`
	s.Loaded(waitResult(t, s.Load(context.Background())))

	assert.True(t, s.Searching())
	assert.Equal(t, []string{"Clean Air", "Emissions caps"}, titles(s.Rows()))
	assert.Len(t, s.All(), 3)
}

func TestLifecycleChrome(t *testing.T) {
	s := NewListScreen(domain.ModeAll, &fakeFetcher{}, true)
	s.OnShow()
	assert.True(t, s.Visible())

	s.Scrolled(false)
	assert.True(t, s.Collapsed())
	s.Scrolled(true)
	assert.False(t, s.Collapsed())

	s.Scrolled(false)
	s.OnHide()
	assert.False(t, s.Visible())
	assert.False(t, s.Collapsed())

	fixed := NewListScreen(domain.ModeAll, &fakeFetcher{}, false)
	fixed.OnShow()
	fixed.Scrolled(false)
	assert.False(t, fixed.Collapsed())
}

func titles(list []domain.Petition) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Title)
	}
	return out
}
