package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// JobApplicationRepository is the application data-access interface.
type JobApplicationRepository interface {
	GetByID(id uint) (*models.JobApplication, error)
	Create(app *models.JobApplication) error
	Update(app *models.JobApplication) error
	List(filter JobApplicationListFilter) ([]models.JobApplication, int64, error)
}

// GormJobApplicationRepository is the GORM implementation.
type GormJobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository creates an application repository.
func NewJobApplicationRepository(db *gorm.DB) *GormJobApplicationRepository {
	return &GormJobApplicationRepository{db: db}
}

// GetByID looks an application up by id.
func (r *GormJobApplicationRepository) GetByID(id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// Create inserts an application.
func (r *GormJobApplicationRepository) Create(app *models.JobApplication) error {
	return r.db.Create(app).Error
}

// Update saves an application.
func (r *GormJobApplicationRepository) Update(app *models.JobApplication) error {
	return r.db.Save(app).Error
}

// List returns applications matching the filter.
func (r *GormJobApplicationRepository) List(filter JobApplicationListFilter) ([]models.JobApplication, int64, error) {
	query := r.db.Model(&models.JobApplication{})

	if filter.JobID > 0 {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.ApplicantID > 0 {
		query = query.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var apps []models.JobApplication
	if err := query.Preload("Job").Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}
