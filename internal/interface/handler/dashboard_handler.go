package handler

import "net/http"

const defaultUsersPageSize = 25

// GetDashboard handles GET /api/dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.GetDashboard(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dashboard)
}

// ListUsers handles GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pagination(r, defaultUsersPageSize, maxPageSize)
	if !ok {
		h.badPagination(w)
		return
	}

	page, err := h.users.ListUsersWithTripCounts(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}
