//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const samplePetitions = `{"results":[
	{"title":"Climate Action","body":"<p>Act on <b>climate</b> now.</p>"},
	{"title":"Tax Reform","body":"<p>Simplify the tax code.</p><ul><li>Fewer brackets</li></ul>"},
	{"title":"Road Repair","body":"<p>Fix the potholes on Main Street.</p>"}
]}`

// petitionsAPI serves a canned payload and counts requests
type petitionsAPI struct {
	*httptest.Server
	hits   atomic.Int32
	status atomic.Int32
}

// NewPetitionsAPI starts a fake API that returns samplePetitions
func NewPetitionsAPI(t *testing.T) *petitionsAPI {
	t.Helper()
	api := &petitionsAPI{}
	api.status.Store(http.StatusOK)
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		status := int(api.status.Load())
		if status != http.StatusOK {
			http.Error(w, "unavailable", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePetitions))
	}))
	t.Cleanup(api.Close)
	return api
}

// Fail makes subsequent requests answer with status
func (a *petitionsAPI) Fail(status int) {
	a.status.Store(int32(status))
}

// Recover makes subsequent requests succeed again
func (a *petitionsAPI) Recover() {
	a.status.Store(http.StatusOK)
}

// Endpoint is the URL passed to --base-url
func (a *petitionsAPI) Endpoint() string {
	return a.URL + "/v1/petitions.json"
}
