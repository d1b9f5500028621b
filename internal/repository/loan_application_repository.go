package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// LoanApplicationRepository is the micro-lending data-access interface.
type LoanApplicationRepository interface {
	GetByID(id uint) (*models.LoanApplication, error)
	Create(app *models.LoanApplication) error
	Update(app *models.LoanApplication) error
	List(filter LoanApplicationListFilter) ([]models.LoanApplication, int64, error)
}

// GormLoanApplicationRepository is the GORM implementation.
type GormLoanApplicationRepository struct {
	db *gorm.DB
}

// NewLoanApplicationRepository creates a loan application repository.
func NewLoanApplicationRepository(db *gorm.DB) *GormLoanApplicationRepository {
	return &GormLoanApplicationRepository{db: db}
}

// GetByID looks an application up by id.
func (r *GormLoanApplicationRepository) GetByID(id uint) (*models.LoanApplication, error) {
	var app models.LoanApplication
	if err := r.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// Create inserts an application.
func (r *GormLoanApplicationRepository) Create(app *models.LoanApplication) error {
	return r.db.Create(app).Error
}

// Update saves an application.
func (r *GormLoanApplicationRepository) Update(app *models.LoanApplication) error {
	return r.db.Save(app).Error
}

// List returns applications matching the filter.
func (r *GormLoanApplicationRepository) List(filter LoanApplicationListFilter) ([]models.LoanApplication, int64, error) {
	query := r.db.Model(&models.LoanApplication{})

	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.LoanApplication
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
