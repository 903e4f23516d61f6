package models

import "github.com/shopspring/decimal"

// Client represents a client of the agency
type Client struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	NationalID  string `json:"national_id"`
	License     string `json:"license"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Notes       string `json:"notes"`
	Blacklisted bool   `json:"blacklisted"`
	CreatedAt   Date   `json:"created_at"`
}

// ClientWithStats is a client row with statistics derived from its
// rental history.
type ClientWithStats struct {
	Client
	RentalCount  int             `json:"rental_count"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	OngoingCount int             `json:"ongoing_count"`
}

// ClientFilter narrows and paginates the client listing.
type ClientFilter struct {
	Search      string
	Blacklisted *bool
	Page        int
	Limit       int
}
