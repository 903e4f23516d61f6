package repository

import (
	"fmt"

	"github.com/ybenali/rental-service/internal/models"
)

// CreateVehicle inserts a new vehicle with status Available.
func (r *Repository) CreateVehicle(v *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (brand, plate, status)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(query, v.Brand, v.Plate, models.VehicleAvailable).Scan(&v.ID)
	if err != nil {
		if mapped := mapConstraint(err, fmt.Sprintf("plate %s already registered", v.Plate), "vehicle", 0); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	v.Status = models.VehicleAvailable
	return nil
}

// ListVehicles returns the whole fleet.
func (r *Repository) ListVehicles() ([]models.Vehicle, error) {
	query := `
		SELECT id, brand, plate, status
		FROM vehicles
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Plate, &v.Status); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
