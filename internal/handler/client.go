package handler

import (
	"net/http"
	"strconv"

	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
	"github.com/ybenali/rental-service/internal/service"
)

type createClientRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	NationalID  string `json:"national_id"`
	License     string `json:"license"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Notes       string `json:"notes"`
	Blacklisted bool   `json:"blacklisted"`
}

// ListClients returns a filtered page of clients with rental stats
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	f := models.ClientFilter{
		Search: r.URL.Query().Get("search"),
		Page:   queryInt(r, "page", "1"),
		Limit:  queryInt(r, "limit", "20"),
	}
	if v := r.URL.Query().Get("blacklisted"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, apperrors.Validationf("invalid blacklisted value %q", v))
			return
		}
		f.Blacklisted = &b
	}

	clients, err := h.svc.ListClients(f)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

// CreateClient registers a new client
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateClient(service.NewClientInput{
		Name:        req.Name,
		Phone:       req.Phone,
		NationalID:  req.NationalID,
		License:     req.License,
		Address:     req.Address,
		City:        req.City,
		Notes:       req.Notes,
		Blacklisted: req.Blacklisted,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}
