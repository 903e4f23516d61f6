package repository

import (
	"fmt"

	"github.com/ybenali/rental-service/internal/models"
)

// CreateExpense inserts a cost record against a vehicle.
func (r *Repository) CreateExpense(e *models.Expense) error {
	query := `
		INSERT INTO expenses (vehicle_id, category, amount, expense_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(query, e.VehicleID, e.Category, e.Amount, e.Date).Scan(&e.ID)
	if err != nil {
		if mapped := mapForeignKey(err, "vehicle", e.VehicleID); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses returns all expenses joined with their vehicle.
func (r *Repository) ListExpenses() ([]models.ExpenseDetail, error) {
	query := `
		SELECT e.id, e.vehicle_id, e.category, e.amount, e.expense_date, v.brand
		FROM expenses e
		JOIN vehicles v ON v.id = e.vehicle_id
		ORDER BY e.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.ExpenseDetail{}
	for rows.Next() {
		var d models.ExpenseDetail
		if err := rows.Scan(&d.ID, &d.VehicleID, &d.Category, &d.Amount, &d.Date, &d.Brand); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, d)
	}
	return expenses, rows.Err()
}
