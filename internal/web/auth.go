package web

import (
	"net/http"

	"github.com/louisbranch/atelier/internal/web/sessioncookie"
)

// requireAuth wraps next with cookie-session authentication.
//
// Absent, unknown, and expired sessions all produce the same 401 envelope
// without invoking the handler. On success the sanitized identity rides the
// request context.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessioncookie.Read(r)
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		session, err := h.sessions.Resolve(r.Context(), token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ident, err := h.identities.GetIdentity(r.Context(), session.IdentityID)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := contextWithIdentity(r.Context(), ident.Public())
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// resolveRequester returns the authenticated identity ID for optional-auth
// routes, or empty for anonymous requests. Resolution failures count as
// anonymous; the access policy decides what anonymity may read.
func (h *Handler) resolveRequester(r *http.Request) string {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return ""
	}
	session, err := h.sessions.Resolve(r.Context(), token)
	if err != nil {
		return ""
	}
	return session.IdentityID
}
