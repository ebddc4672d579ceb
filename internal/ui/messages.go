package ui

import (
	"petitions/internal/petitions"
)

// loadResultMsg carries a finished background fetch back to the UI task
type loadResultMsg struct {
	tab    int
	result petitions.Result
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
