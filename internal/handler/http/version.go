package http

import (
	"net/http"
)

// getServerVersion handles GET /api/version. The body is plain text so that
// deployment checks can read it without JSON tooling.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
