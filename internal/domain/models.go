package domain

import (
	"fmt"
	"strings"
)

// Petition is a single petition as returned by the API
type Petition struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Petitions is the top-level shape of the API response
type Petitions struct {
	Results []Petition `json:"results"`
}

// Mode selects which petitions feed is requested
type Mode int

const (
	ModeAll     Mode = iota // every petition
	ModePopular             // petitions above the signature floor
)

// Modes lists the modes in tab order
var Modes = []Mode{ModeAll, ModePopular}

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModePopular:
		return "popular"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the tab caption for the mode
func (m Mode) Label() string {
	switch m {
	case ModePopular:
		return "Top Rated"
	default:
		return "Most Recent"
	}
}

// ParseMode converts a flag or config value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "recent", "0":
		return ModeAll, nil
	case "popular", "top", "1":
		return ModePopular, nil
	}
	return ModeAll, fmt.Errorf("unknown mode %q (want all or popular)", s)
}
