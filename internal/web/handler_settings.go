package web

import (
	"net/http"

	"github.com/louisbranch/atelier/internal/gallery"
)

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.gallery.GetSiteSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings gallery.SiteSettings
	if err := decodeJSON(r, &settings); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.gallery.UpdateSiteSettings(r.Context(), settings)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
