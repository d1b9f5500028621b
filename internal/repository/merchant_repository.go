package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// MerchantRepository is the discount catalog data-access interface.
type MerchantRepository interface {
	GetByID(id uint) (*models.Merchant, error)
	Create(m *models.Merchant) error
	Update(m *models.Merchant) error
	List(filter MerchantListFilter) ([]models.Merchant, int64, error)
	Sectors() ([]string, error)
	RecordUsage(u *models.DiscountUsage) error
	ListUsage(userID uint, page, pageSize int) ([]models.DiscountUsage, int64, error)
}

// GormMerchantRepository is the GORM implementation.
type GormMerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a merchant repository.
func NewMerchantRepository(db *gorm.DB) *GormMerchantRepository {
	return &GormMerchantRepository{db: db}
}

// GetByID looks a merchant up by id.
func (r *GormMerchantRepository) GetByID(id uint) (*models.Merchant, error) {
	var m models.Merchant
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a merchant.
func (r *GormMerchantRepository) Create(m *models.Merchant) error {
	return r.db.Create(m).Error
}

// Update saves a merchant.
func (r *GormMerchantRepository) Update(m *models.Merchant) error {
	return r.db.Save(m).Error
}

// List returns merchants matching the filter.
func (r *GormMerchantRepository) List(filter MerchantListFilter) ([]models.Merchant, int64, error) {
	query := r.db.Model(&models.Merchant{})

	if filter.Sector != "" {
		query = query.Where("sector = ?", filter.Sector)
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("business_name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Merchant
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Sectors returns the distinct sectors of active merchants.
func (r *GormMerchantRepository) Sectors() ([]string, error) {
	var sectors []string
	if err := r.db.Model(&models.Merchant{}).
		Where("is_active = ? AND sector <> ''", true).
		Distinct("sector").
		Order("sector ASC").
		Pluck("sector", &sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}

// RecordUsage inserts a discount usage record.
func (r *GormMerchantRepository) RecordUsage(u *models.DiscountUsage) error {
	return r.db.Create(u).Error
}

// ListUsage returns a member's discount usage history.
func (r *GormMerchantRepository) ListUsage(userID uint, page, pageSize int) ([]models.DiscountUsage, int64, error) {
	query := r.db.Model(&models.DiscountUsage{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	var rows []models.DiscountUsage
	if err := query.Preload("Merchant").Order("used_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
