package http

import "net/http"

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
