package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tripboard-service/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps err to a response. Unclassified errors are logged and reported generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ue, ok := usecase.AsError(err); ok {
		status := ue.HTTPStatus()
		if status >= http.StatusInternalServerError {
			h.logger.Error("Request failed", "path", r.URL.Path, "kind", ue.Kind, "error", err)
		}
		h.writeJSON(w, status, errorResponse{Error: ue.Message, Code: string(ue.Kind)})
		return
	}

	h.logger.Error("Request failed", "path", r.URL.Path, "error", err)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

// pagination reads limit and offset query parameters
func pagination(r *http.Request, defaultLimit, maxLimit int) (limit, offset int, ok bool) {
	limit, offset = defaultLimit, 0
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		limit = min(n, maxLimit)
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

func (h *Handler) badPagination(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: "limit must be a positive integer and offset a non-negative integer",
		Code:  string(usecase.KindValidation),
	})
}
