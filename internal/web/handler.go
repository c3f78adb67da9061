// Package web hosts the JSON API: authentication, media objects, and the
// public gallery surface.
package web

import (
	"net/http"

	"github.com/louisbranch/atelier/internal/auth/session"
	"github.com/louisbranch/atelier/internal/gallery"
	"github.com/louisbranch/atelier/internal/objects"
	"github.com/louisbranch/atelier/internal/storage"
)

// Handler serves the API routes.
type Handler struct {
	identities storage.IdentityStore
	sessions   *session.Manager
	objects    *objects.Service
	gallery    *gallery.Service
	production bool
}

// HandlerConfig holds the collaborators the handler routes to.
type HandlerConfig struct {
	Identities storage.IdentityStore
	Sessions   *session.Manager
	Objects    *objects.Service
	Gallery    *gallery.Service
	Production bool
}

// NewHandler composes the API mux.
//
// Reads of gallery content and public files stay open; every mutation and
// the current-user route sit behind the session gate.
func NewHandler(cfg HandlerConfig) http.Handler {
	h := &Handler{
		identities: cfg.Identities,
		sessions:   cfg.Sessions,
		objects:    cfg.Objects,
		gallery:    cfg.Gallery,
		production: cfg.Production,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)
	mux.HandleFunc("GET /api/auth/user", h.requireAuth(h.handleCurrentUser))

	mux.HandleFunc("POST /api/upload", h.requireAuth(h.handleUpload))
	mux.HandleFunc("GET /api/files/{id}", h.handleServeFile)
	mux.HandleFunc("DELETE /api/files/{id}", h.requireAuth(h.handleDeleteFile))

	mux.HandleFunc("GET /api/projects", h.handleListProjects)
	mux.HandleFunc("POST /api/projects", h.requireAuth(h.handleCreateProject))
	mux.HandleFunc("GET /api/projects/{id}", h.handleGetProject)
	mux.HandleFunc("PUT /api/projects/{id}", h.requireAuth(h.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", h.requireAuth(h.handleDeleteProject))

	mux.HandleFunc("GET /api/projects/{id}/images", h.handleListProjectImages)
	mux.HandleFunc("POST /api/projects/{id}/images", h.requireAuth(h.handleAddProjectImage))
	mux.HandleFunc("DELETE /api/projects/{projectID}/images/{imageID}", h.requireAuth(h.handleDeleteProjectImage))
	mux.HandleFunc("PATCH /api/projects/{projectID}/images/{imageID}", h.requireAuth(h.handleReorderProjectImage))

	mux.HandleFunc("GET /api/settings", h.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", h.requireAuth(h.handleUpdateSettings))

	return mux
}
