package repository

import (
	"database/sql"
	"fmt"

	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

// CreateCredit inserts the purchase loan for a vehicle. The unique
// constraint on vehicle_id keeps it to one active loan per vehicle.
func (r *Repository) CreateCredit(c *models.Credit) error {
	query := `
		INSERT INTO credits (vehicle_id, total_amount, mensualite, amount_paid)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(query, c.VehicleID, c.TotalAmount, c.Mensualite, c.AmountPaid).Scan(&c.ID)
	if err != nil {
		if mapped := mapConstraint(err, fmt.Sprintf("vehicle %d already has a credit", c.VehicleID), "vehicle", c.VehicleID); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create credit: %w", err)
	}
	return nil
}

// ListCredits returns all credits joined with their vehicle.
func (r *Repository) ListCredits() ([]models.CreditDetail, error) {
	query := `
		SELECT c.id, c.vehicle_id, c.total_amount, c.mensualite, c.amount_paid, v.brand, v.plate
		FROM credits c
		JOIN vehicles v ON v.id = c.vehicle_id
		ORDER BY c.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	credits := []models.CreditDetail{}
	for rows.Next() {
		var d models.CreditDetail
		err := rows.Scan(&d.ID, &d.VehicleID, &d.TotalAmount, &d.Mensualite, &d.AmountPaid, &d.Brand, &d.Plate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		d.Reste = d.Remaining()
		credits = append(credits, d)
	}
	return credits, rows.Err()
}

// PayCreditInstallment advances the running total by exactly one
// mensualite. Only the total is tracked, not which calendar month was
// paid. The WHERE guard keeps the total within the loan amount.
func (r *Repository) PayCreditInstallment(id int64) (*models.Credit, error) {
	c := &models.Credit{}
	query := `
		UPDATE credits
		SET amount_paid = amount_paid + mensualite
		WHERE id = $1 AND amount_paid + mensualite <= total_amount
		RETURNING id, vehicle_id, total_amount, mensualite, amount_paid`
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.VehicleID, &c.TotalAmount, &c.Mensualite, &c.AmountPaid)
	if err == sql.ErrNoRows {
		var exists bool
		if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM credits WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check credit: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound("credit", id)
		}
		return nil, apperrors.Validationf("installment exceeds the remaining balance of credit %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pay credit installment: %w", err)
	}
	return c, nil
}
