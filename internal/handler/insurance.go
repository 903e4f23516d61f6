package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/models"
	"github.com/ybenali/rental-service/internal/service"
)

type createInsuranceRequest struct {
	VehicleID    int64           `json:"vehicle_id"`
	Insurer      string          `json:"insurer"`
	TotalPremium decimal.Decimal `json:"total_premium"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	StartDate    models.Date     `json:"start_date"`
	EndDate      models.Date     `json:"end_date"`
}

// ListInsurance returns all policies
func (h *Handler) ListInsurance(w http.ResponseWriter, r *http.Request) {
	policies, err := h.svc.ListInsurance()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policies)
}

// CreateInsurance registers a policy
func (h *Handler) CreateInsurance(w http.ResponseWriter, r *http.Request) {
	var req createInsuranceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreateInsurance(service.NewInsuranceInput{
		VehicleID:    req.VehicleID,
		Insurer:      req.Insurer,
		TotalPremium: req.TotalPremium,
		AmountPaid:   req.AmountPaid,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// PayInsurance applies a partial payment to a policy
func (h *Handler) PayInsurance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req paymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.PayInsurance(id, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
