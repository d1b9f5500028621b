package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// CmsPageRepository is the CMS data-access interface.
type CmsPageRepository interface {
	GetByID(id uint) (*models.CmsPage, error)
	GetBySlug(slug string) (*models.CmsPage, error)
	Create(page *models.CmsPage) error
	Update(page *models.CmsPage) error
	List(filter CmsPageListFilter) ([]models.CmsPage, int64, error)
	IncrementViews(id uint) error
}

// GormCmsPageRepository is the GORM implementation.
type GormCmsPageRepository struct {
	db *gorm.DB
}

// NewCmsPageRepository creates a CMS page repository.
func NewCmsPageRepository(db *gorm.DB) *GormCmsPageRepository {
	return &GormCmsPageRepository{db: db}
}

// GetByID looks a page up by id.
func (r *GormCmsPageRepository) GetByID(id uint) (*models.CmsPage, error) {
	var page models.CmsPage
	if err := r.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetBySlug looks a page up by slug.
func (r *GormCmsPageRepository) GetBySlug(slug string) (*models.CmsPage, error) {
	var page models.CmsPage
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// Create inserts a page.
func (r *GormCmsPageRepository) Create(page *models.CmsPage) error {
	return r.db.Create(page).Error
}

// Update saves a page.
func (r *GormCmsPageRepository) Update(page *models.CmsPage) error {
	return r.db.Save(page).Error
}

// List returns pages matching the filter.
func (r *GormCmsPageRepository) List(filter CmsPageListFilter) ([]models.CmsPage, int64, error) {
	query := r.db.Model(&models.CmsPage{})

	if filter.PageType != "" {
		query = query.Where("page_type = ?", filter.PageType)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}
	if filter.OnlyPublished {
		query = query.Where("status = ?", models.PagePublished)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.CmsPage
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// IncrementViews bumps the view counter.
func (r *GormCmsPageRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.CmsPage{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
