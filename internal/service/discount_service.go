package service

import (
	"strings"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// DiscountService serves the merchant discount catalog.
type DiscountService struct {
	repo repository.MerchantRepository
}

// NewDiscountService creates a discount service.
func NewDiscountService(repo repository.MerchantRepository) *DiscountService {
	return &DiscountService{repo: repo}
}

// Sectors lists the catalog's sectors.
func (s *DiscountService) Sectors() ([]string, error) {
	return s.repo.Sectors()
}

// Featured returns the highlighted merchants.
func (s *DiscountService) Featured(limit int) ([]models.Merchant, error) {
	if limit <= 0 {
		limit = 12
	}
	rows, _, err := s.repo.List(repository.MerchantListFilter{
		Page:         1,
		PageSize:     limit,
		FeaturedOnly: true,
		ActiveOnly:   true,
	})
	return rows, err
}

// List returns active merchants matching the filter.
func (s *DiscountService) List(filter repository.MerchantListFilter) ([]models.Merchant, int64, error) {
	filter.ActiveOnly = true
	return s.repo.List(filter)
}

// MerchantCreateInput is the partner onboarding payload.
type MerchantCreateInput struct {
	BusinessName       string
	ContactName        string
	ContactEmail       string
	ContactPhone       string
	BusinessType       string
	DiscountPercentage int
	Sector             string
	Location           string
	LogoURL            string
	Description        string
	IsFeatured         bool
}

// CreateMerchant onboards a partner business.
func (s *DiscountService) CreateMerchant(input MerchantCreateInput) (*models.Merchant, error) {
	name := strings.TrimSpace(input.BusinessName)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return nil, ErrInvalidInput
	}

	m := &models.Merchant{
		BusinessName:       name,
		ContactName:        strings.TrimSpace(input.ContactName),
		ContactEmail:       strings.ToLower(strings.TrimSpace(input.ContactEmail)),
		ContactPhone:       strings.TrimSpace(input.ContactPhone),
		BusinessType:       strings.TrimSpace(input.BusinessType),
		DiscountPercentage: input.DiscountPercentage,
		Sector:             strings.TrimSpace(input.Sector),
		Location:           strings.TrimSpace(input.Location),
		LogoURL:            strings.TrimSpace(input.LogoURL),
		Description:        input.Description,
		IsFeatured:         input.IsFeatured,
		IsActive:           true,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordUsage logs a member redeeming a merchant's discount.
func (s *DiscountService) RecordUsage(userID, merchantID uint, amountSaved decimal.Decimal) (*models.DiscountUsage, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	merchant, err := s.repo.GetByID(merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrNotFound
	}

	usage := &models.DiscountUsage{
		UserID:             userID,
		MerchantID:         merchantID,
		DiscountPercentage: merchant.DiscountPercentage,
		AmountSaved:        models.NewMoneyFromDecimal(amountSaved),
		UsedAt:             timeNow(),
	}
	if err := s.repo.RecordUsage(usage); err != nil {
		return nil, err
	}
	return usage, nil
}

// ListUsage returns a member's redemption history.
func (s *DiscountService) ListUsage(userID uint, page, pageSize int) ([]models.DiscountUsage, int64, error) {
	return s.repo.ListUsage(userID, page, pageSize)
}
