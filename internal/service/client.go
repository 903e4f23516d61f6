package service

import (
	"strings"

	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

// NewClientInput carries the fields of a client registration.
type NewClientInput struct {
	Name        string
	Phone       string
	NationalID  string
	License     string
	Address     string
	City        string
	Notes       string
	Blacklisted bool
}

// CreateClient registers a new client record.
func (s *Service) CreateClient(in NewClientInput) (*models.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.NationalID = strings.TrimSpace(in.NationalID)
	if in.Name == "" {
		return nil, apperrors.Validationf("name is required")
	}
	if in.NationalID == "" {
		return nil, apperrors.Validationf("national id is required")
	}

	c := &models.Client{
		Name:        in.Name,
		Phone:       in.Phone,
		NationalID:  in.NationalID,
		License:     in.License,
		Address:     in.Address,
		City:        in.City,
		Notes:       in.Notes,
		Blacklisted: in.Blacklisted,
	}
	if err := s.store.CreateClient(c); err != nil {
		return nil, err
	}

	s.log.Infof("Client created: %s", c.Name)
	return c, nil
}

// ListClients returns a filtered page of clients with their derived
// rental statistics.
func (s *Service) ListClients(f models.ClientFilter) ([]models.ClientWithStats, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
	return s.store.ListClients(f)
}
