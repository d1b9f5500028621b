package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// DistributorRepository is the distributor data-access interface.
type DistributorRepository interface {
	GetByID(id uint) (*models.Distributor, error)
	GetByUserID(userID uint) (*models.Distributor, error)
	Create(d *models.Distributor) error
	Update(d *models.Distributor) error
	List(filter DistributorListFilter) ([]models.Distributor, int64, error)
}

// GormDistributorRepository is the GORM implementation.
type GormDistributorRepository struct {
	db *gorm.DB
}

// NewDistributorRepository creates a distributor repository.
func NewDistributorRepository(db *gorm.DB) *GormDistributorRepository {
	return &GormDistributorRepository{db: db}
}

// GetByID looks a distributor up by id.
func (r *GormDistributorRepository) GetByID(id uint) (*models.Distributor, error) {
	var d models.Distributor
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// GetByUserID looks a distributor up by owning user.
func (r *GormDistributorRepository) GetByUserID(userID uint) (*models.Distributor, error) {
	var d models.Distributor
	if err := r.db.Where("user_id = ?", userID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a distributor.
func (r *GormDistributorRepository) Create(d *models.Distributor) error {
	return r.db.Create(d).Error
}

// Update saves a distributor.
func (r *GormDistributorRepository) Update(d *models.Distributor) error {
	return r.db.Save(d).Error
}

// List returns distributors matching the filter.
func (r *GormDistributorRepository) List(filter DistributorListFilter) ([]models.Distributor, int64, error) {
	query := r.db.Model(&models.Distributor{})

	if filter.Type != "" {
		query = query.Where("distributor_type = ?", filter.Type)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Distributor
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
