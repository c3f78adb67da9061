package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/atelier/internal/auth/password"
	"github.com/louisbranch/atelier/internal/storage"
	"github.com/louisbranch/atelier/internal/web/sessioncookie"
)

// invalidCredentialsMessage is shared by the unknown-username and
// wrong-password branches so the two rejections are indistinguishable on
// the wire.
const invalidCredentialsMessage = "Invalid username or password"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	ident, err := h.identities.FindIdentityByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSONError(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		writeError(w, err)
		return
	}
	if !password.Verify(req.Password, ident.PasswordHash) {
		writeJSONError(w, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	session, err := h.sessions.Create(r.Context(), ident.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	sessioncookie.Write(w, session.ID, h.production)
	log.Printf("login for %q", ident.Username)
	writeJSON(w, http.StatusOK, ident.Public())
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := sessioncookie.Read(r); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			writeError(w, err)
			return
		}
	}
	sessioncookie.Clear(w, h.production)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, identityFromContext(r.Context()))
}
