package service

import (
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/config"
	"github.com/ybenali/rental-service/internal/models"
)

// memStore is an in-memory Store with the same observable behavior as
// the Postgres repository, including the status guards and payment caps.
type memStore struct {
	vehicles map[int64]*models.Vehicle
	clients  map[int64]*models.Client
	rentals  map[int64]*models.Rental
	expenses map[int64]*models.Expense
	policies map[int64]*models.InsurancePolicy
	credits  map[int64]*models.Credit
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		vehicles: map[int64]*models.Vehicle{},
		clients:  map[int64]*models.Client{},
		rentals:  map[int64]*models.Rental{},
		expenses: map[int64]*models.Expense{},
		policies: map[int64]*models.InsurancePolicy{},
		credits:  map[int64]*models.Credit{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateVehicle(v *models.Vehicle) error {
	for _, existing := range m.vehicles {
		if existing.Plate == v.Plate {
			return apperrors.Conflictf("plate %s already registered", v.Plate)
		}
	}
	v.ID = m.id()
	v.Status = models.VehicleAvailable
	cp := *v
	m.vehicles[v.ID] = &cp
	return nil
}

func (m *memStore) ListVehicles() ([]models.Vehicle, error) {
	out := []models.Vehicle{}
	for _, id := range m.sortedVehicleIDs() {
		out = append(out, *m.vehicles[id])
	}
	return out, nil
}

func (m *memStore) sortedVehicleIDs() []int64 {
	ids := make([]int64, 0, len(m.vehicles))
	for id := range m.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *memStore) CreateClient(c *models.Client) error {
	for _, existing := range m.clients {
		if existing.NationalID == c.NationalID {
			return apperrors.Conflictf("national id %s already registered", c.NationalID)
		}
	}
	c.ID = m.id()
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *memStore) ListClients(f models.ClientFilter) ([]models.ClientWithStats, error) {
	out := []models.ClientWithStats{}
	search := strings.ToLower(f.Search)
	for _, c := range m.clients {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Phone), search) &&
			!strings.Contains(strings.ToLower(c.NationalID), search) &&
			!strings.Contains(strings.ToLower(c.City), search) {
			continue
		}
		if f.Blacklisted != nil && c.Blacklisted != *f.Blacklisted {
			continue
		}
		stats := models.ClientWithStats{Client: *c, TotalPaid: decimal.Zero}
		for _, r := range m.rentals {
			if r.ClientID != nil && *r.ClientID == c.ID {
				stats.RentalCount++
				stats.TotalPaid = stats.TotalPaid.Add(r.AmountPaid)
				if r.Status == models.RentalOngoing {
					stats.OngoingCount++
				}
			}
		}
		stats.TotalPaid = stats.TotalPaid.Round(2)
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	start := (f.Page - 1) * f.Limit
	if start > len(out) {
		start = len(out)
	}
	end := start + f.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (m *memStore) CreateRental(rent *models.Rental) error {
	v, ok := m.vehicles[rent.VehicleID]
	if !ok {
		return apperrors.NotFound("vehicle", rent.VehicleID)
	}
	if v.Status != models.VehicleAvailable {
		return apperrors.Conflictf("vehicle %d is already rented", rent.VehicleID)
	}
	v.Status = models.VehicleRented
	rent.ID = m.id()
	rent.Status = models.RentalOngoing
	cp := *rent
	m.rentals[rent.ID] = &cp
	return nil
}

func (m *memStore) ListRentals(page, limit int) ([]models.RentalDetail, error) {
	ids := make([]int64, 0, len(m.rentals))
	for id := range m.rentals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	out := []models.RentalDetail{}
	for _, id := range ids {
		r := m.rentals[id]
		v := m.vehicles[r.VehicleID]
		out = append(out, models.RentalDetail{
			Rental: *r,
			Brand:  v.Brand,
			Plate:  v.Plate,
			Reste:  r.Reste(),
		})
	}
	start := (page - 1) * limit
	if start > len(out) {
		start = len(out)
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (m *memStore) ListAllRentals() ([]models.Rental, error) {
	out := []models.Rental{}
	for _, r := range m.rentals {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memStore) AddRentalPayment(id int64, amount decimal.Decimal) (*models.Rental, error) {
	r, ok := m.rentals[id]
	if !ok {
		return nil, apperrors.NotFound("rental", id)
	}
	if r.AmountPaid.Add(amount).GreaterThan(r.TotalPrice) {
		return nil, apperrors.Validationf("payment exceeds the remaining balance of rental %d", id)
	}
	r.AmountPaid = r.AmountPaid.Add(amount)
	cp := *r
	return &cp, nil
}

func (m *memStore) CloseRental(id int64) (*models.Rental, error) {
	r, ok := m.rentals[id]
	if !ok {
		return nil, apperrors.NotFound("rental", id)
	}
	if r.Status != models.RentalOngoing {
		return nil, apperrors.Conflictf("rental %d is already completed", id)
	}
	r.Status = models.RentalCompleted
	m.vehicles[r.VehicleID].Status = models.VehicleAvailable
	cp := *r
	return &cp, nil
}

func (m *memStore) DeleteRental(id int64) error {
	r, ok := m.rentals[id]
	if !ok {
		return apperrors.NotFound("rental", id)
	}
	delete(m.rentals, id)
	if r.Status == models.RentalOngoing {
		stillHeld := false
		for _, other := range m.rentals {
			if other.VehicleID == r.VehicleID && other.Status == models.RentalOngoing {
				stillHeld = true
			}
		}
		if !stillHeld {
			m.vehicles[r.VehicleID].Status = models.VehicleAvailable
		}
	}
	return nil
}

func (m *memStore) CreateExpense(e *models.Expense) error {
	if _, ok := m.vehicles[e.VehicleID]; !ok {
		return apperrors.NotFound("vehicle", e.VehicleID)
	}
	e.ID = m.id()
	cp := *e
	m.expenses[e.ID] = &cp
	return nil
}

func (m *memStore) ListExpenses() ([]models.ExpenseDetail, error) {
	out := []models.ExpenseDetail{}
	for _, e := range m.expenses {
		out = append(out, models.ExpenseDetail{Expense: *e, Brand: m.vehicles[e.VehicleID].Brand})
	}
	return out, nil
}

func (m *memStore) CreateInsurance(p *models.InsurancePolicy) error {
	if _, ok := m.vehicles[p.VehicleID]; !ok {
		return apperrors.NotFound("vehicle", p.VehicleID)
	}
	p.ID = m.id()
	cp := *p
	m.policies[p.ID] = &cp
	return nil
}

func (m *memStore) ListInsurance() ([]models.InsurancePolicy, error) {
	out := []models.InsurancePolicy{}
	for _, p := range m.policies {
		cp := *p
		cp.Reste = cp.Remaining()
		out = append(out, cp)
	}
	return out, nil
}

func (m *memStore) AddInsurancePayment(id int64, amount decimal.Decimal) (*models.InsurancePolicy, error) {
	p, ok := m.policies[id]
	if !ok {
		return nil, apperrors.NotFound("insurance policy", id)
	}
	if p.AmountPaid.Add(amount).GreaterThan(p.TotalPremium) {
		return nil, apperrors.Validationf("payment exceeds the remaining premium of policy %d", id)
	}
	p.AmountPaid = p.AmountPaid.Add(amount)
	cp := *p
	cp.Reste = cp.Remaining()
	return &cp, nil
}

func (m *memStore) CreateCredit(c *models.Credit) error {
	if _, ok := m.vehicles[c.VehicleID]; !ok {
		return apperrors.NotFound("vehicle", c.VehicleID)
	}
	for _, existing := range m.credits {
		if existing.VehicleID == c.VehicleID {
			return apperrors.Conflictf("vehicle %d already has a credit", c.VehicleID)
		}
	}
	c.ID = m.id()
	cp := *c
	m.credits[c.ID] = &cp
	return nil
}

func (m *memStore) ListCredits() ([]models.CreditDetail, error) {
	out := []models.CreditDetail{}
	for _, c := range m.credits {
		v := m.vehicles[c.VehicleID]
		out = append(out, models.CreditDetail{Credit: *c, Brand: v.Brand, Plate: v.Plate, Reste: c.Remaining()})
	}
	return out, nil
}

func (m *memStore) PayCreditInstallment(id int64) (*models.Credit, error) {
	c, ok := m.credits[id]
	if !ok {
		return nil, apperrors.NotFound("credit", id)
	}
	if c.AmountPaid.Add(c.Mensualite).GreaterThan(c.TotalAmount) {
		return nil, apperrors.Validationf("installment exceeds the remaining balance of credit %d", id)
	}
	c.AmountPaid = c.AmountPaid.Add(c.Mensualite)
	cp := *c
	return &cp, nil
}

func newTestService(store Store) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminUser:     "admin",
		AdminPassword: "agence2026",
	}
	svc, err := NewService(store, logger, cfg)
	if err != nil {
		panic(err)
	}
	return svc
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
