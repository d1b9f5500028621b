package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/gosimple/slug"
)

// CmsService manages content pages.
type CmsService struct {
	repo repository.CmsPageRepository
}

// NewCmsService creates a CMS service.
func NewCmsService(repo repository.CmsPageRepository) *CmsService {
	return &CmsService{repo: repo}
}

// ListPublished returns published pages matching the filter.
func (s *CmsService) ListPublished(filter repository.CmsPageListFilter) ([]models.CmsPage, int64, error) {
	filter.OnlyPublished = true
	return s.repo.List(filter)
}

// ListAll returns all pages, drafts included.
func (s *CmsService) ListAll(filter repository.CmsPageListFilter) ([]models.CmsPage, int64, error) {
	return s.repo.List(filter)
}

// GetBySlug returns a published page by slug.
func (s *CmsService) GetBySlug(pageSlug string) (*models.CmsPage, error) {
	page, err := s.repo.GetBySlug(strings.TrimSpace(pageSlug))
	if err != nil {
		return nil, err
	}
	if page == nil || page.Status != models.PagePublished {
		return nil, ErrNotFound
	}
	return page, nil
}

// PageInput is the page editing payload.
type PageInput struct {
	Title           string
	Slug            string
	Content         string
	PageType        string
	Status          string
	Author          string
	MetaDescription string
	MetaKeywords    string
	FeaturedImage   string
	IsFeatured      bool
	PublishDate     *time.Time
}

// Create adds a page. A missing slug is generated from the title, with
// a numeric suffix on collision.
func (s *CmsService) Create(input PageInput) (*models.CmsPage, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status == "" {
		status = models.PageDraft
	}
	if status != models.PageDraft && status != models.PagePublished {
		return nil, ErrInvalidInput
	}

	pageSlug, err := s.resolveSlug(input.Slug, title)
	if err != nil {
		return nil, err
	}

	publishDate := input.PublishDate
	if status == models.PagePublished && publishDate == nil {
		now := time.Now()
		publishDate = &now
	}

	page := &models.CmsPage{
		Title:           title,
		Slug:            pageSlug,
		Content:         input.Content,
		PageType:        strings.TrimSpace(input.PageType),
		Status:          status,
		Author:          strings.TrimSpace(input.Author),
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		FeaturedImage:   strings.TrimSpace(input.FeaturedImage),
		IsFeatured:      input.IsFeatured,
		PublishDate:     publishDate,
	}
	if err := s.repo.Create(page); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}
	return page, nil
}

// Update edits a page.
func (s *CmsService) Update(id uint, input PageInput, modifiedBy string) (*models.CmsPage, error) {
	page, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		page.Title = title
	}
	if newSlug := strings.TrimSpace(input.Slug); newSlug != "" && newSlug != page.Slug {
		existing, err := s.repo.GetBySlug(newSlug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrSlugExists
		}
		page.Slug = slug.Make(newSlug)
	}
	if input.Content != "" {
		page.Content = input.Content
	}
	if t := strings.TrimSpace(input.PageType); t != "" {
		page.PageType = t
	}
	if status := strings.ToLower(strings.TrimSpace(input.Status)); status != "" {
		if status != models.PageDraft && status != models.PagePublished {
			return nil, ErrInvalidInput
		}
		if status == models.PagePublished && page.Status != models.PagePublished && page.PublishDate == nil {
			now := time.Now()
			page.PublishDate = &now
		}
		page.Status = status
	}
	if input.MetaDescription != "" {
		page.MetaDescription = input.MetaDescription
	}
	if input.MetaKeywords != "" {
		page.MetaKeywords = input.MetaKeywords
	}
	if img := strings.TrimSpace(input.FeaturedImage); img != "" {
		page.FeaturedImage = img
	}
	page.IsFeatured = input.IsFeatured
	page.LastModifiedBy = strings.TrimSpace(modifiedBy)

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}
	return page, nil
}

// CountView bumps the page view counter.
func (s *CmsService) CountView(id uint) error {
	page, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if page == nil {
		return ErrNotFound
	}
	return s.repo.IncrementViews(id)
}

func (s *CmsService) resolveSlug(raw, title string) (string, error) {
	base := strings.TrimSpace(raw)
	if base == "" {
		base = title
	}
	candidate := slug.Make(base)
	if candidate == "" {
		return "", ErrInvalidInput
	}

	for i := 0; i < 5; i++ {
		probe := candidate
		if i > 0 {
			probe = fmt.Sprintf("%s-%d", candidate, i+1)
		}
		existing, err := s.repo.GetBySlug(probe)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return probe, nil
		}
	}
	return "", ErrSlugExists
}
