package web

import (
	"net/http"

	"github.com/louisbranch/atelier/internal/gallery"
)

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.gallery.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if projects == nil {
		projects = []gallery.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.gallery.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var input gallery.ProjectInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	project, err := h.gallery.CreateProject(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *Handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var input gallery.ProjectInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	project, err := h.gallery.UpdateProject(r.Context(), r.PathValue("id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.gallery.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListProjectImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.gallery.ListProjectImages(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if images == nil {
		images = []gallery.ProjectImage{}
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *Handler) handleAddProjectImage(w http.ResponseWriter, r *http.Request) {
	var input gallery.ImageInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	image, err := h.gallery.AddProjectImage(r.Context(), r.PathValue("id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *Handler) handleDeleteProjectImage(w http.ResponseWriter, r *http.Request) {
	if err := h.gallery.DeleteProjectImage(r.Context(), r.PathValue("imageID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	SortOrder int `json:"sortOrder"`
}

func (h *Handler) handleReorderProjectImage(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.gallery.ReorderProjectImage(r.Context(), r.PathValue("imageID"), req.SortOrder); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
