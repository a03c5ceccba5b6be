package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// StartOAuth handles GET /api/auth/oauth/{provider}
func (h *Handler) StartOAuth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	success := q.Get("success")
	if success == "" {
		success = h.successURL
	}
	failure := q.Get("failure")
	if failure == "" {
		failure = h.signInURL
	}

	consentURL, err := h.auth.CreateOAuthSession(chi.URLParam(r, "provider"), success, failure)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, consentURL, http.StatusFound)
}

// OAuthCallback handles GET /api/auth/oauth/{provider}/callback
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.auth.CompleteOAuthSession(r.Context(), chi.URLParam(r, "provider"), q.Get("state"), q.Get("code"))
	if result == nil {
		h.writeError(w, r, err)
		return
	}
	if err != nil {
		h.logger.Warn("Sign-in failed", "error", err)
	}

	if result.SessionToken != "" {
		http.SetCookie(w, h.sessionCookie(result.SessionToken, h.cookie.TTL))
	}
	http.Redirect(w, r, result.RedirectURL, http.StatusFound)
}

// CurrentUser handles GET /api/auth/me
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, UserFromContext(r.Context()))
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}

// sessionCookie builds the session cookie; a negative ttl deletes it
func (h *Handler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	} else if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	return cookie
}
