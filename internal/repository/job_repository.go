package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// JobRepository is the job board data-access interface.
type JobRepository interface {
	GetByID(id uint) (*models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	List(filter JobListFilter) ([]models.Job, int64, error)
	GetCompanyByID(id uint) (*models.Company, error)
	GetCompanyByName(name string) (*models.Company, error)
	CreateCompany(company *models.Company) error
}

// GormJobRepository is the GORM implementation.
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a job repository.
func NewJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// GetByID looks a job up by id, preloading its company.
func (r *GormJobRepository) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// Create inserts a job.
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// Update saves a job.
func (r *GormJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// List returns jobs matching the filter.
func (r *GormJobRepository) List(filter JobListFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.CompanyID > 0 {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.RemoteOnly {
		query = query.Where("is_remote = ?", true)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var jobs []models.Job
	if err := query.Preload("Company").Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// GetCompanyByID looks a company up by id.
func (r *GormJobRepository) GetCompanyByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

// GetCompanyByName looks a company up by exact name.
func (r *GormJobRepository) GetCompanyByName(name string) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("name = ?", name).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

// CreateCompany inserts a company.
func (r *GormJobRepository) CreateCompany(company *models.Company) error {
	return r.db.Create(company).Error
}
