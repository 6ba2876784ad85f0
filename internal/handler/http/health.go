package http

import (
	"net/http"

	"github.com/MKhiriev/go-spa-host/internal/logger"
)

// getHealth reports whether the host is able to serve the generated
// artifact. It doubles as the container HEALTHCHECK target.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.ArtifactService.Check(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed")
		http.Error(w, "generated artifact unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
