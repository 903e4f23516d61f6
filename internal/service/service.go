package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/config"
	"github.com/ybenali/rental-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Store is the persistence contract the service depends on,
// implemented by the repository.
type Store interface {
	CreateVehicle(v *models.Vehicle) error
	ListVehicles() ([]models.Vehicle, error)

	CreateClient(c *models.Client) error
	ListClients(f models.ClientFilter) ([]models.ClientWithStats, error)

	CreateRental(rent *models.Rental) error
	ListRentals(page, limit int) ([]models.RentalDetail, error)
	ListAllRentals() ([]models.Rental, error)
	AddRentalPayment(id int64, amount decimal.Decimal) (*models.Rental, error)
	CloseRental(id int64) (*models.Rental, error)
	DeleteRental(id int64) error

	CreateExpense(e *models.Expense) error
	ListExpenses() ([]models.ExpenseDetail, error)

	CreateInsurance(p *models.InsurancePolicy) error
	ListInsurance() ([]models.InsurancePolicy, error)
	AddInsurancePayment(id int64, amount decimal.Decimal) (*models.InsurancePolicy, error)

	CreateCredit(c *models.Credit) error
	ListCredits() ([]models.CreditDetail, error)
	PayCreditInstallment(id int64) (*models.Credit, error)
}

// Service handles business logic
type Service struct {
	store             Store
	log               *logrus.Logger
	config            *config.Config
	adminPasswordHash []byte
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger, cfg *config.Config) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Service{store: store, log: log, config: cfg, adminPasswordHash: hash}, nil
}

// Login authenticates the back-office operator and returns a JWT token
func (s *Service) Login(username, password string) (string, error) {
	if username != s.config.AdminUser {
		return "", apperrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		return "", apperrors.ErrUnauthorized
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", username)
	return tokenString, nil
}
