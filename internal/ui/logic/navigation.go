package logic

// Navigator handles cursor movement and viewport management for a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// SetTotal changes the item count, e.g. after a load or a search, keeping
// the cursor in range
func (n *Navigator) SetTotal(total int) {
	n.totalItems = total
	n.clampSelection()
	n.ensureSelectedVisible()
}

// SetViewportHeight changes the number of visible rows
func (n *Navigator) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	n.viewportHeight = h
	n.ensureSelectedVisible()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clampSelection()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the cursor by delta rows
func (n *Navigator) Move(delta int) {
	n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageDown moves the cursor one viewport down
func (n *Navigator) PageDown() {
	n.Move(n.viewportHeight)
}

// PageUp moves the cursor one viewport up
func (n *Navigator) PageUp() {
	n.Move(-n.viewportHeight)
}

// Top jumps to the first item
func (n *Navigator) Top() {
	n.SetSelectedIndex(0)
}

// Bottom jumps to the last item
func (n *Navigator) Bottom() {
	n.SetSelectedIndex(n.totalItems - 1)
}

// Reset puts the cursor back at the top
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// VisibleRange returns the half-open [start, end) range of visible rows and
// whether scroll indicators are needed above and below
func (n *Navigator) VisibleRange() (start, end int, ind Indicators) {
	start = n.viewportOffset
	end = start + n.effectiveHeight(start)
	if end > n.totalItems {
		end = n.totalItems
	}
	return start, end, Indicators{Up: start > 0, Down: end < n.totalItems}
}

// Indicators describes which scroll indicators to draw
type Indicators struct {
	Up   bool
	Down bool
}

func (n *Navigator) clampSelection() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// effectiveHeight is the viewport height at offset minus the rows taken by
// scroll indicators
func (n *Navigator) effectiveHeight(offset int) int {
	needsTopIndicator := offset > 0
	needsBottomIndicator := offset+n.viewportHeight < n.totalItems

	// Once the top indicator takes a row the remaining items may no longer fit
	if !needsBottomIndicator && needsTopIndicator {
		remainingItems := n.totalItems - offset
		if remainingItems > n.viewportHeight-1 {
			needsBottomIndicator = true
		}
	}

	h := n.viewportHeight
	if needsTopIndicator {
		h--
	}
	if needsBottomIndicator {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.totalItems <= n.viewportHeight {
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	// Scrolling down can add a top indicator and shrink the window by a row,
	// so settle the offset in at most a couple of passes
	for i := 0; i < 3 && n.selectedIndex >= n.viewportOffset+n.effectiveHeight(n.viewportOffset); i++ {
		n.viewportOffset = n.selectedIndex - n.effectiveHeight(n.viewportOffset) + 1
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
