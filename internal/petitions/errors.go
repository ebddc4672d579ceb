package petitions

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrLoading is the single failure signal surfaced to the UI. Network,
// status and decode failures all wrap it.
var ErrLoading = errors.New("loading error")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}
