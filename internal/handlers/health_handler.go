package handlers

import "net/http"

// HealthHandler reports that the server is up.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
