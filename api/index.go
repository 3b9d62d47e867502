package api

import "net/http"

// Index handles service descriptor invocations (GET /, GET /info, GET /api).
func Index(w http.ResponseWriter, r *http.Request) {
	instance().ServeHTTP(w, r)
}
