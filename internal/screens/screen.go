// Package screens holds the toolkit-independent state behind the list and
// detail views. Widgets call the lifecycle hooks; the screens never draw.
package screens

// Screen is the lifecycle every view goes through.
type Screen interface {
	// OnLoad runs once, before the screen is first shown.
	OnLoad()
	// OnShow runs every time the screen becomes visible.
	OnShow()
	// OnHide runs every time the screen stops being visible.
	OnHide()
	// Title is the navigation title.
	Title() string
}

// Chrome tracks the "hide bars on swipe" behaviour shared by both screens:
// while a screen is visible, scrolling may collapse the header.
type Chrome struct {
	visible      bool
	hideOnScroll bool
	collapsed    bool
}

func (c *Chrome) show(hideOnScroll bool) {
	c.visible = true
	c.hideOnScroll = hideOnScroll
	c.collapsed = false
}

func (c *Chrome) hide() {
	c.visible = false
	c.hideOnScroll = false
	c.collapsed = false
}

// Visible reports whether the screen is on top.
func (c *Chrome) Visible() bool { return c.visible }

// Scrolled records scrolling; the header collapses when scrolled away from
// the top and hide-on-scroll is active.
func (c *Chrome) Scrolled(atTop bool) {
	if !c.hideOnScroll {
		return
	}
	c.collapsed = !atTop
}

// Collapsed reports whether the header should be hidden.
func (c *Chrome) Collapsed() bool { return c.collapsed }

var (
	_ Screen = (*ListScreen)(nil)
	_ Screen = (*DetailScreen)(nil)
)
