package handler

import (
	"net/http"

	"tripboard-service/internal/domain/entity"
)

type countriesResponse struct {
	Countries []entity.Country `json:"countries"`
	Live      bool             `json:"live"`
	Error     string           `json:"error,omitempty"`
}

// ListCountries handles GET /api/countries
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, live := h.countries.Countries(r.Context())
	resp := countriesResponse{Countries: countries, Live: live}
	if !live {
		resp.Error = "Using offline country list - some countries may be missing"
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// InvalidateCountries handles POST /api/countries/invalidate
func (h *Handler) InvalidateCountries(w http.ResponseWriter, r *http.Request) {
	h.countries.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
