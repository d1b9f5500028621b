package service

import (
	"strings"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService manages marketplace listings.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns active listings matching the filter.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.ActiveOnly = true
	return s.repo.List(filter)
}

// GetByID returns a listing and counts the view.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	_ = s.repo.IncrementViews(id)
	return p, nil
}

// Categories lists the catalog's categories.
func (s *ProductService) Categories() ([]string, error) {
	return s.repo.Categories()
}

// ProductInput is the listing payload.
type ProductInput struct {
	SellerID     *uint
	Title        string
	Description  string
	Price        decimal.Decimal
	Category     string
	Condition    string
	Location     string
	Images       []string
	ContactPhone string
	ContactEmail string
	IsFeatured   bool
}

// Create posts a listing.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Price.IsNegative() {
		return nil, ErrInvalidInput
	}

	p := &models.Product{
		SellerID:     input.SellerID,
		Title:        title,
		Description:  input.Description,
		Price:        models.NewMoneyFromDecimal(input.Price),
		Category:     strings.TrimSpace(input.Category),
		Condition:    strings.TrimSpace(input.Condition),
		Location:     strings.TrimSpace(input.Location),
		Images:       input.Images,
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		ContactEmail: strings.ToLower(strings.TrimSpace(input.ContactEmail)),
		IsActive:     true,
		IsFeatured:   input.IsFeatured,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update edits a listing.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		p.Title = title
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if !input.Price.IsZero() {
		if input.Price.IsNegative() {
			return nil, ErrInvalidInput
		}
		p.Price = models.NewMoneyFromDecimal(input.Price)
	}
	if c := strings.TrimSpace(input.Category); c != "" {
		p.Category = c
	}
	if c := strings.TrimSpace(input.Condition); c != "" {
		p.Condition = c
	}
	if l := strings.TrimSpace(input.Location); l != "" {
		p.Location = l
	}
	if len(input.Images) > 0 {
		p.Images = input.Images
	}
	if v := strings.TrimSpace(input.ContactPhone); v != "" {
		p.ContactPhone = v
	}
	if v := strings.TrimSpace(input.ContactEmail); v != "" {
		p.ContactEmail = strings.ToLower(v)
	}
	p.IsFeatured = input.IsFeatured

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
