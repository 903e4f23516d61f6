package models

import "github.com/shopspring/decimal"

// Rental statuses
const (
	RentalOngoing   = "Ongoing"
	RentalCompleted = "Completed"
)

// Rental represents a rental contract binding one vehicle to a date
// range and a price
type Rental struct {
	ID         int64           `json:"id"`
	VehicleID  int64           `json:"vehicle_id"`
	ClientID   *int64          `json:"client_id,omitempty"`
	StartDate  Date            `json:"start_date"`
	Days       int             `json:"days"`
	ReturnDate Date            `json:"return_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Deposit    string          `json:"deposit"`
	Status     string          `json:"status"`
}

// Reste is the remaining balance, recomputed on every read and rounded
// to 2 places for display. Stored amounts keep full precision.
func (r *Rental) Reste() decimal.Decimal {
	return r.TotalPrice.Sub(r.AmountPaid).Round(2)
}

// RentalDetail is a rental joined with its vehicle for listings.
type RentalDetail struct {
	Rental
	Brand string          `json:"brand"`
	Plate string          `json:"plate"`
	Reste decimal.Decimal `json:"reste"`
}
