package views

const (
	mainPadding  = 2 // top and bottom padding of the main container
	headerLines  = 3 // title, tab strip, blank line
	footerLines  = 2 // blank line, key help
	searchLines  = 1 // active search banner
	detailHeader = 2 // petition title, blank line
)

// ListHeight returns how many petition rows fit on a terminal of the given
// height. Rows are RowLines tall and a scroll indicator takes a whole row.
// A collapsed header gives its lines to the list.
func ListHeight(height int, collapsed, searching bool) int {
	h := height - mainPadding - footerLines
	if !collapsed {
		h -= headerLines
	}
	if searching {
		h -= searchLines
	}
	h /= RowLines
	if h < 1 {
		h = 1
	}
	return h
}

// DetailHeight returns how many lines of petition text fit on screen
func DetailHeight(height int, collapsed bool) int {
	h := height - mainPadding - footerLines
	if !collapsed {
		h -= detailHeader
	}
	if h < 1 {
		h = 1
	}
	return h
}

// ContentWidth returns the usable width inside the main container
func ContentWidth(width int) int {
	w := width - 4
	if w < 10 {
		w = 10
	}
	return w
}
