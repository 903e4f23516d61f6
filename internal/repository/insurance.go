package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

const insuranceColumns = `id, vehicle_id, insurer, total_premium, amount_paid, start_date, end_date`

func scanInsurance(row interface{ Scan(...interface{}) error }, p *models.InsurancePolicy) error {
	return row.Scan(&p.ID, &p.VehicleID, &p.Insurer, &p.TotalPremium, &p.AmountPaid, &p.StartDate, &p.EndDate)
}

// CreateInsurance inserts a new policy.
func (r *Repository) CreateInsurance(p *models.InsurancePolicy) error {
	query := `
		INSERT INTO insurance_policies (vehicle_id, insurer, total_premium, amount_paid, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(query, p.VehicleID, p.Insurer, p.TotalPremium, p.AmountPaid, p.StartDate, p.EndDate).
		Scan(&p.ID)
	if err != nil {
		if mapped := mapForeignKey(err, "vehicle", p.VehicleID); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create insurance policy: %w", err)
	}
	return nil
}

// ListInsurance returns all policies.
func (r *Repository) ListInsurance() ([]models.InsurancePolicy, error) {
	rows, err := r.db.Query(`SELECT ` + insuranceColumns + ` FROM insurance_policies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance policies: %w", err)
	}
	defer rows.Close()

	policies := []models.InsurancePolicy{}
	for rows.Next() {
		var p models.InsurancePolicy
		if err := scanInsurance(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan insurance policy: %w", err)
		}
		p.Reste = p.Remaining()
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// AddInsurancePayment adds a partial payment to a policy, capped at the
// total premium by the WHERE guard.
func (r *Repository) AddInsurancePayment(id int64, amount decimal.Decimal) (*models.InsurancePolicy, error) {
	p := &models.InsurancePolicy{}
	query := `
		UPDATE insurance_policies
		SET amount_paid = amount_paid + $2
		WHERE id = $1 AND amount_paid + $2 <= total_premium
		RETURNING ` + insuranceColumns
	err := scanInsurance(r.db.QueryRow(query, id, amount), p)
	if err == sql.ErrNoRows {
		var exists bool
		if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM insurance_policies WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check insurance policy: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound("insurance policy", id)
		}
		return nil, apperrors.Validationf("payment exceeds the remaining premium of policy %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply insurance payment: %w", err)
	}
	p.Reste = p.Remaining()
	return p, nil
}
