package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository is the crowdfunding project data-access interface.
// Two implementations exist: the GORM one below and an in-memory one
// used where no database is wanted.
type ProjectRepository interface {
	GetByID(id uint) (*models.Project, error)
	Create(p *models.Project) error
	Update(p *models.Project) error
	List(filter ProjectListFilter) ([]models.Project, int64, error)
}

// GormProjectRepository is the GORM implementation.
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a project repository.
func NewProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// GetByID looks a project up by id.
func (r *GormProjectRepository) GetByID(id uint) (*models.Project, error) {
	var p models.Project
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a project.
func (r *GormProjectRepository) Create(p *models.Project) error {
	return r.db.Create(p).Error
}

// Update saves a project.
func (r *GormProjectRepository) Update(p *models.Project) error {
	return r.db.Save(p).Error
}

// List returns projects matching the filter.
func (r *GormProjectRepository) List(filter ProjectListFilter) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Project
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
