package models

import "github.com/shopspring/decimal"

// Dashboard represents the financial and fleet rollup shown on the
// front-office dashboard. Computed fresh on every request; all sums
// over empty sets are zero and every figure is rounded to 2 places.
type Dashboard struct {
	TotalVehicles     int             `json:"total_vehicles"`
	RentedVehicles    int             `json:"rented_vehicles"`
	AvailableVehicles int             `json:"available_vehicles"`
	Revenue           decimal.Decimal `json:"revenue"`
	Receivables       decimal.Decimal `json:"receivables"`
	Charges           decimal.Decimal `json:"charges"`
	NetProfit         decimal.Decimal `json:"net_profit"`
}
