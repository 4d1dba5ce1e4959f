package handler

import "net/http"

// Health handles GET /healthz. It reports process liveness only; it does not
// probe the persistence backend.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
