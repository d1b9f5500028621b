package service

import (
	"strings"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// DistributorService manages wholesale partner profiles.
type DistributorService struct {
	repo     repository.DistributorRepository
	userRepo repository.UserRepository
}

// NewDistributorService creates a distributor service.
func NewDistributorService(repo repository.DistributorRepository, userRepo repository.UserRepository) *DistributorService {
	return &DistributorService{repo: repo, userRepo: userRepo}
}

// DistributorRegisterInput is the registration payload.
type DistributorRegisterInput struct {
	UserID              uint
	BusinessName        string
	RegistrationNumber  string
	DistributorType     string
	ContactPhone        string
	ContactEmail        string
	TerritoryCoverage   []string
	ProductsDistributed []string
	CommissionRate      decimal.Decimal
}

// Register creates a distributor profile for a user. One profile per
// user.
func (s *DistributorService) Register(input DistributorRegisterInput) (*models.Distributor, error) {
	name := strings.TrimSpace(input.BusinessName)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if input.CommissionRate.IsNegative() {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	existing, err := s.repo.GetByUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAgentExists
	}

	d := &models.Distributor{
		UserID:              input.UserID,
		BusinessName:        name,
		RegistrationNumber:  strings.TrimSpace(input.RegistrationNumber),
		DistributorType:     strings.TrimSpace(input.DistributorType),
		ContactPhone:        strings.TrimSpace(input.ContactPhone),
		ContactEmail:        strings.ToLower(strings.TrimSpace(input.ContactEmail)),
		TerritoryCoverage:   input.TerritoryCoverage,
		ProductsDistributed: input.ProductsDistributed,
		CommissionRate:      models.NewMoneyFromDecimal(input.CommissionRate),
		IsActive:            true,
	}
	if err := s.repo.Create(d); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAgentExists
		}
		return nil, err
	}
	return d, nil
}

// GetByUserID returns a user's distributor profile.
func (s *DistributorService) GetByUserID(userID uint) (*models.Distributor, error) {
	d, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// List returns distributors matching the filter.
func (s *DistributorService) List(filter repository.DistributorListFilter) ([]models.Distributor, int64, error) {
	return s.repo.List(filter)
}

// RecordSale adds a sale and accrues its commission.
func (s *DistributorService) RecordSale(id uint, amount decimal.Decimal) (*models.Distributor, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	if !d.IsActive {
		return nil, ErrStatusConflict
	}

	commission := amount.Mul(d.CommissionRate.Decimal).Div(decimal.NewFromInt(100)).Round(2)
	d.TotalSales = models.NewMoneyFromDecimal(d.TotalSales.Decimal.Add(amount))
	d.CommissionEarned = models.NewMoneyFromDecimal(d.CommissionEarned.Decimal.Add(commission))
	d.CommissionPending = models.NewMoneyFromDecimal(d.CommissionPending.Decimal.Add(commission))
	if err := s.repo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetActive toggles a distributor's active flag.
func (s *DistributorService) SetActive(id uint, active bool) (*models.Distributor, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	d.IsActive = active
	if err := s.repo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}
