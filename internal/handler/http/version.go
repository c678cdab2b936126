package http

import (
	"net/http"
)

// getRelayVersion answers GET /relay/version with the build version so an
// extension can check which relay it talks to. It needs no token.
func (h *Handler) getRelayVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.buildInfo.Version))
}
