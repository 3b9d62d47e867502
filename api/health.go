package api

import "net/http"

// Health handles health check invocations (GET /health, GET /api/health).
func Health(w http.ResponseWriter, r *http.Request) {
	instance().ServeHTTP(w, r)
}
