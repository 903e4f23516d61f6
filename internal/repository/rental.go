package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

const rentalColumns = `id, vehicle_id, client_id, start_date, days, return_date, total_price, amount_paid, deposit, status`

func scanRental(row interface{ Scan(...interface{}) error }, rent *models.Rental) error {
	return row.Scan(&rent.ID, &rent.VehicleID, &rent.ClientID, &rent.StartDate, &rent.Days,
		&rent.ReturnDate, &rent.TotalPrice, &rent.AmountPaid, &rent.Deposit, &rent.Status)
}

// CreateRental inserts a rental and flips the vehicle to Rented in one
// transaction. The conditional vehicle update closes the double-booking
// race: zero rows affected means the vehicle is missing or already out.
func (r *Repository) CreateRental(rent *models.Rental) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE vehicles SET status = $1 WHERE id = $2 AND status = $3`,
		models.VehicleRented, rent.VehicleID, models.VehicleAvailable)
	if err != nil {
		return fmt.Errorf("failed to update vehicle status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		var status string
		err := tx.QueryRow(`SELECT status FROM vehicles WHERE id = $1`, rent.VehicleID).Scan(&status)
		if err == sql.ErrNoRows {
			return apperrors.NotFound("vehicle", rent.VehicleID)
		}
		if err != nil {
			return fmt.Errorf("failed to check vehicle: %w", err)
		}
		return apperrors.Conflictf("vehicle %d is already rented", rent.VehicleID)
	}

	query := `
		INSERT INTO rentals (vehicle_id, client_id, start_date, days, return_date, total_price, amount_paid, deposit, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err = tx.QueryRow(query, rent.VehicleID, rent.ClientID, rent.StartDate, rent.Days,
		rent.ReturnDate, rent.TotalPrice, rent.AmountPaid, rent.Deposit, models.RentalOngoing).Scan(&rent.ID)
	if err != nil {
		if mapped := mapConstraint(err, fmt.Sprintf("vehicle %d is already rented", rent.VehicleID), "client", 0); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create rental: %w", err)
	}
	rent.Status = models.RentalOngoing

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rental: %w", err)
	}
	return nil
}

// ListRentals returns rentals newest first, joined with their vehicle.
func (r *Repository) ListRentals(page, limit int) ([]models.RentalDetail, error) {
	query := `
		SELECT r.id, r.vehicle_id, r.client_id, r.start_date, r.days, r.return_date,
		       r.total_price, r.amount_paid, r.deposit, r.status, v.brand, v.plate
		FROM rentals r
		JOIN vehicles v ON v.id = r.vehicle_id
		ORDER BY r.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	rentals := []models.RentalDetail{}
	for rows.Next() {
		var d models.RentalDetail
		err := rows.Scan(&d.ID, &d.VehicleID, &d.ClientID, &d.StartDate, &d.Days, &d.ReturnDate,
			&d.TotalPrice, &d.AmountPaid, &d.Deposit, &d.Status, &d.Brand, &d.Plate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		d.Reste = d.Rental.Reste()
		rentals = append(rentals, d)
	}
	return rentals, rows.Err()
}

// ListAllRentals returns every rental, for aggregation.
func (r *Repository) ListAllRentals() ([]models.Rental, error) {
	rows, err := r.db.Query(`SELECT ` + rentalColumns + ` FROM rentals`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	rentals := []models.Rental{}
	for rows.Next() {
		var rent models.Rental
		if err := scanRental(rows, &rent); err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rent)
	}
	return rentals, rows.Err()
}

// AddRentalPayment adds a partial payment to a rental. The guard in
// the WHERE clause keeps amount_paid within total_price atomically.
func (r *Repository) AddRentalPayment(id int64, amount decimal.Decimal) (*models.Rental, error) {
	rent := &models.Rental{}
	query := `
		UPDATE rentals
		SET amount_paid = amount_paid + $2
		WHERE id = $1 AND amount_paid + $2 <= total_price
		RETURNING ` + rentalColumns
	err := scanRental(r.db.QueryRow(query, id, amount), rent)
	if err == sql.ErrNoRows {
		var exists bool
		if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM rentals WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check rental: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound("rental", id)
		}
		return nil, apperrors.Validationf("payment exceeds the remaining balance of rental %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply rental payment: %w", err)
	}
	return rent, nil
}

// CloseRental marks a rental Completed and returns its vehicle to the
// fleet. The vehicle goes back to Available unconditionally: at most
// one ongoing rental exists per vehicle.
func (r *Repository) CloseRental(id int64) (*models.Rental, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rent := &models.Rental{}
	query := `
		UPDATE rentals SET status = $2
		WHERE id = $1 AND status = $3
		RETURNING ` + rentalColumns
	err = scanRental(tx.QueryRow(query, id, models.RentalCompleted, models.RentalOngoing), rent)
	if err == sql.ErrNoRows {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM rentals WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check rental: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound("rental", id)
		}
		return nil, apperrors.Conflictf("rental %d is already completed", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to close rental: %w", err)
	}

	_, err = tx.Exec(`UPDATE vehicles SET status = $1 WHERE id = $2`,
		models.VehicleAvailable, rent.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rental close-out: %w", err)
	}
	return rent, nil
}

// DeleteRental removes a rental. Deleting an ongoing rental returns
// the vehicle to Available unless another ongoing rental still holds it.
func (r *Repository) DeleteRental(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var vehicleID int64
	var status string
	err = tx.QueryRow(`DELETE FROM rentals WHERE id = $1 RETURNING vehicle_id, status`, id).
		Scan(&vehicleID, &status)
	if err == sql.ErrNoRows {
		return apperrors.NotFound("rental", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete rental: %w", err)
	}

	if status == models.RentalOngoing {
		_, err = tx.Exec(`
			UPDATE vehicles SET status = $1
			WHERE id = $2
			  AND NOT EXISTS (SELECT 1 FROM rentals WHERE vehicle_id = $2 AND status = $3)`,
			models.VehicleAvailable, vehicleID, models.RentalOngoing)
		if err != nil {
			return fmt.Errorf("failed to revert vehicle status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rental deletion: %w", err)
	}
	return nil
}
