package handler

import "net/http"

type createVehicleRequest struct {
	Brand string `json:"brand"`
	Plate string `json:"plate"`
}

// ListVehicles returns the fleet
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListVehicles()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

// CreateVehicle registers a new vehicle
func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.svc.CreateVehicle(req.Brand, req.Plate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}
