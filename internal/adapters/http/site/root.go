// Package site serves the embedded dashboard page.
//
// The page is the presentation layer: it reads the JSON API and renders the
// metric cards, the trend line chart, the top-emitters bar chart and the raw
// data table client-side. The core never renders anything itself.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded dashboard routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/", http.FileServer(FS()))
}
