package models

// Vehicle statuses. A vehicle is Rented exactly while it has an
// ongoing rental, Available otherwise.
const (
	VehicleAvailable = "Available"
	VehicleRented    = "Rented"
)

// Vehicle represents a car in the fleet
type Vehicle struct {
	ID     int64  `json:"id"`
	Brand  string `json:"brand"`
	Plate  string `json:"plate"`
	Status string `json:"status"`
}
