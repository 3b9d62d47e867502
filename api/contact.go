package api

import "net/http"

// Contact handles contact form submission invocations (POST /contact,
// POST /api/contact and their preflights).
func Contact(w http.ResponseWriter, r *http.Request) {
	instance().ServeHTTP(w, r)
}
