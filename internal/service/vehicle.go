package service

import (
	"strings"

	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

// CreateVehicle registers a new vehicle in the fleet. Plates are
// normalized to uppercase before the uniqueness check.
func (s *Service) CreateVehicle(brand, plate string) (*models.Vehicle, error) {
	brand = strings.TrimSpace(brand)
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if brand == "" {
		return nil, apperrors.Validationf("brand is required")
	}
	if plate == "" {
		return nil, apperrors.Validationf("plate is required")
	}

	v := &models.Vehicle{Brand: brand, Plate: plate}
	if err := s.store.CreateVehicle(v); err != nil {
		return nil, err
	}

	s.log.Infof("Vehicle created: %s (%s)", v.Plate, v.Brand)
	return v, nil
}

// ListVehicles returns the whole fleet.
func (s *Service) ListVehicles() ([]models.Vehicle, error) {
	return s.store.ListVehicles()
}
