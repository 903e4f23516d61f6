package repository

import (
	"fmt"

	"github.com/ybenali/rental-service/internal/models"
)

// CreateClient inserts a new client record.
func (r *Repository) CreateClient(c *models.Client) error {
	query := `
		INSERT INTO clients (name, phone, national_id, license, address, city, notes, blacklisted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_DATE)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, c.Name, c.Phone, c.NationalID, c.License, c.Address, c.City, c.Notes, c.Blacklisted).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if mapped := mapConstraint(err, fmt.Sprintf("national id %s already registered", c.NationalID), "client", 0); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// ListClients returns a filtered page of clients, each with statistics
// derived from its rental history. The stats come from a single grouped
// join instead of one scan per client.
func (r *Repository) ListClients(f models.ClientFilter) ([]models.ClientWithStats, error) {
	query := `
		SELECT c.id, c.name, c.phone, c.national_id, c.license, c.address, c.city, c.notes,
		       c.blacklisted, c.created_at,
		       COUNT(r.id),
		       COALESCE(SUM(r.amount_paid), 0),
		       COUNT(r.id) FILTER (WHERE r.status = $1)
		FROM clients c
		LEFT JOIN rentals r ON r.client_id = c.id
		WHERE ($2::text = '' OR c.name ILIKE $3 OR c.phone ILIKE $3 OR c.national_id ILIKE $3 OR c.city ILIKE $3)
		  AND ($4::boolean IS NULL OR c.blacklisted = $4)
		GROUP BY c.id
		ORDER BY c.id
		LIMIT $5 OFFSET $6`
	rows, err := r.db.Query(query, models.RentalOngoing, f.Search, "%"+f.Search+"%",
		f.Blacklisted, f.Limit, (f.Page-1)*f.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []models.ClientWithStats{}
	for rows.Next() {
		var c models.ClientWithStats
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.NationalID, &c.License, &c.Address, &c.City,
			&c.Notes, &c.Blacklisted, &c.CreatedAt, &c.RentalCount, &c.TotalPaid, &c.OngoingCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		c.TotalPaid = c.TotalPaid.Round(2)
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
