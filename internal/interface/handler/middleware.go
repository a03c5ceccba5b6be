package handler

import (
	"net/http"
	"strings"
	"time"

	"tripboard-service/internal/usecase"
	"tripboard-service/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
)

// Session resolves the session cookie once per request and stores the user in the
// request context. Requests without a valid session continue anonymously.
func (h *Handler) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cookie.Name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.auth.GetCurrentUser(r.Context(), cookie.Value)
		if err != nil {
			if !usecase.IsKind(err, usecase.KindAuthorization) {
				h.logger.Warn("Failed to resolve session", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireUser rejects requests without a signed-in user
func (h *Handler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			h.deny(w, r, usecase.AuthorizeAdmin(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests unless the signed-in user is an admin.
// Browser navigations are redirected to the sign-in page instead.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := usecase.AuthorizeAdmin(UserFromContext(r.Context())); err != nil {
			h.deny(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) deny(w http.ResponseWriter, r *http.Request, err error) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, h.signInURL, http.StatusSeeOther)
		return
	}
	h.writeError(w, r, err)
}

// RequestLogger logs one line per request
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String(),
				"requestId", middleware.GetReqID(r.Context()))
		})
	}
}
