package webform

import (
	"net/http"
	"strings"
)

// isDataStar reports whether r was sent by the datastar client.
func isDataStar(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has("datastar")
}
