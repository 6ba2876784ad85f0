package http

import (
	"net/http"
)

// envScriptRoute is the fixed public path of the generated environment
// artifact. The SPA must load it ahead of its main bundle.
const envScriptRoute = "/env.js"

// getEnvScript serves the generated artifact. The artifact is regenerated on
// every container start, so clients must not cache it: a browser holding
// yesterday's env.js would keep reading yesterday's values after a redeploy.
func (h *Handler) getEnvScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	http.ServeFile(w, r, h.services.ArtifactService.Path())
}
