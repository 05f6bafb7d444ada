package rest

import "net/http"

// NotImplemented answers routes that existing clients call but the catalog
// does not serve: keyword search and query-string lookup.
func NotImplemented(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotImplemented, "Not implemented")
}
