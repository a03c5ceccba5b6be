package handler

import (
	"encoding/json"
	"net/http"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

const (
	defaultTripsPageSize = 8
	maxPageSize          = 100
	// MaxCreateTripBody caps the create-trip request body in bytes
	MaxCreateTripBody = 64 << 10
)

type createTripResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type createTripError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Success bool   `json:"success"`
}

// CreateTrip handles POST /api/create-trip
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req entity.TripRequest
	body := http.MaxBytesReader(w, r.Body, MaxCreateTripBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.logger.Warn("Error parsing request body", "error", err)
		h.writeJSON(w, http.StatusBadRequest, createTripError{
			Error:   "Invalid request body",
			Message: "Request must contain valid JSON",
		})
		return
	}

	id, err := h.generator.GenerateTrip(r.Context(), &req)
	if err != nil {
		h.writeCreateTripError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, createTripResponse{ID: id, Success: true})
}

func (h *Handler) writeCreateTripError(w http.ResponseWriter, err error) {
	ue, ok := usecase.AsError(err)
	if !ok {
		h.logger.Error("Error generating travel plan", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, createTripError{
			Error:   "Failed to generate travel plan",
			Message: "Unknown error occurred",
		})
		return
	}

	switch ue.Kind {
	case usecase.KindValidation:
		h.writeJSON(w, http.StatusBadRequest, createTripError{Error: ue.Message, Message: ue.Message})
	case usecase.KindConfiguration:
		h.writeJSON(w, http.StatusInternalServerError, createTripError{Error: ue.Message, Message: ue.Message})
	default:
		h.logger.Error("Error generating travel plan", "kind", ue.Kind, "code", ue.Code, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, createTripError{
			Error:   "Failed to generate travel plan",
			Message: ue.Message,
			Code:    ue.Code,
		})
	}
}

// ListTrips handles GET /api/trips
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pagination(r, defaultTripsPageSize, maxPageSize)
	if !ok {
		h.badPagination(w)
		return
	}

	page, err := h.trips.ListTrips(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// GetTrip handles GET /api/trips/{id}
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	detail, err := h.trips.GetTripDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}
