package models

import "github.com/shopspring/decimal"

// Expense is a pure cost record against a vehicle. Immutable once
// created, except by deletion.
type Expense struct {
	ID        int64           `json:"id"`
	VehicleID int64           `json:"vehicle_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"expense_date"`
}

// ExpenseDetail is an expense joined with its vehicle for listings.
type ExpenseDetail struct {
	Expense
	Brand string `json:"brand"`
}
