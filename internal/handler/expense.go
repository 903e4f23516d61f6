package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/models"
)

type createExpenseRequest struct {
	VehicleID int64           `json:"vehicle_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      models.Date     `json:"expense_date"`
}

// ListExpenses returns all expenses
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

// CreateExpense records a cost against a vehicle
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.CreateExpense(req.VehicleID, req.Category, req.Amount, req.Date)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, e)
}
