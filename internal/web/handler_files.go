package web

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/louisbranch/atelier/internal/objects"
	apperrors "github.com/louisbranch/atelier/internal/platform/errors"
)

type uploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
	Visibility  string `json:"visibility,omitempty"`
}

type uploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.CodeInvalidArgument, "data must be base64 encoded", err))
		return
	}
	visibility, ok := objects.ParseVisibility(req.Visibility)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "visibility must be public or private")
		return
	}

	uploader := identityFromContext(r.Context())
	obj, err := h.objects.Upload(r.Context(), objects.UploadInput{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Data:        data,
		OwnerID:     uploader.ID,
		Visibility:  visibility,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:  obj.ID,
		URL: "/api/files/" + obj.ID,
	})
}

func (h *Handler) handleServeFile(w http.ResponseWriter, r *http.Request) {
	requester := h.resolveRequester(r)
	obj, err := h.objects.Fetch(r.Context(), r.PathValue("id"), requester)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", obj.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(obj.Data)
}

func (h *Handler) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	requester := identityFromContext(r.Context())
	if err := h.objects.Delete(r.Context(), r.PathValue("id"), requester.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
