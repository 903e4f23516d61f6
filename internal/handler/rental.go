package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
	"github.com/ybenali/rental-service/internal/service"
)

type createRentalRequest struct {
	VehicleID  int64           `json:"vehicle_id"`
	ClientID   *int64          `json:"client_id"`
	StartDate  models.Date     `json:"start_date"`
	Days       int             `json:"days"`
	ReturnDate models.Date     `json:"return_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Deposit    string          `json:"deposit"`
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperrors.Validationf("invalid id")
	}
	return id, nil
}

func queryInt(r *http.Request, key, def string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		v = def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// ListRentals returns a page of rentals, newest first
func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", "1")
	limit := queryInt(r, "limit", "20")

	rentals, err := h.svc.ListRentals(page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

// CreateRental books a vehicle
func (h *Handler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rent, err := h.svc.CreateRental(service.NewRentalInput{
		VehicleID:  req.VehicleID,
		ClientID:   req.ClientID,
		StartDate:  req.StartDate,
		Days:       req.Days,
		ReturnDate: req.ReturnDate,
		TotalPrice: req.TotalPrice,
		AmountPaid: req.AmountPaid,
		Deposit:    req.Deposit,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rent)
}

// PayRental applies a partial payment to a rental
func (h *Handler) PayRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req paymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rent, err := h.svc.PayRental(id, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rental": rent,
		"reste":  rent.Reste(),
	})
}

// ReturnRental closes a rental and frees the vehicle
func (h *Handler) ReturnRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	rent, err := h.svc.ReturnRental(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rent)
}

// DeleteRental removes a rental
func (h *Handler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.DeleteRental(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
