package input

import (
	"petitions/internal/screens"
	"petitions/internal/ui/logic"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Screen    *screens.ListScreen
	Navigator *logic.Navigator
	Tabs      int
}

// CurrentIndex returns the selected row of the displayed list
func (c *ModelContext) CurrentIndex() int {
	if c.Navigator == nil {
		return 0
	}
	return c.Navigator.GetSelectedIndex()
}

// TotalItems returns the number of displayed rows
func (c *ModelContext) TotalItems() int {
	if c.Screen == nil {
		return 0
	}
	return c.Screen.Len()
}

func (c *ModelContext) IsLoading() bool {
	return c.Screen != nil && c.Screen.Loading()
}

func (c *ModelContext) IsSearching() bool {
	return c.Screen != nil && c.Screen.Searching()
}

func (c *ModelContext) TabCount() int {
	return c.Tabs
}
