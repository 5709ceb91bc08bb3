package handlers

import "net/http"

// Health reports liveness. It stays deliberately trivial so probes never
// depend on downstream state.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
