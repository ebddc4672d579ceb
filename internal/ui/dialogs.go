package ui

import "petitions/internal/ui/views"

type dialogKind int

const (
	dialogCredits dialogKind = iota
	dialogLoadError
)

type dialog struct {
	kind dialogKind
	view views.Dialog
}

func creditsDialog() *dialog {
	return &dialog{
		kind: dialogCredits,
		view: views.Dialog{
			Title:   "Credits",
			Message: "The contents of this app comes from the We The People API of the Whitehouse.",
			Button:  "Continue",
		},
	}
}

func loadErrorDialog() *dialog {
	return &dialog{
		kind: dialogLoadError,
		view: views.Dialog{
			Title:   "Loading error",
			Message: "There was a problem loading the feed; please check your connection and try again.",
			Button:  "OK",
		},
	}
}
