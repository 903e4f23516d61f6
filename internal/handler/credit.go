package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

type createCreditRequest struct {
	VehicleID   int64           `json:"vehicle_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Mensualite  decimal.Decimal `json:"mensualite"`
}

// ListCredits returns all credits
func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	credits, err := h.svc.ListCredits()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credits)
}

// CreateCredit registers a vehicle purchase loan
func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req createCreditRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCredit(req.VehicleID, req.TotalAmount, req.Mensualite)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// PayCredit consumes one monthly installment
func (h *Handler) PayCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	c, err := h.svc.PayCredit(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"credit": c,
		"reste":  c.Remaining(),
	})
}
