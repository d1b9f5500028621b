package service

import (
	"strings"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProjectService manages crowdfunding proposals. The repository is an
// interface so the in-memory and GORM stores are interchangeable.
type ProjectService struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a project service.
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List returns projects matching the filter.
func (s *ProjectService) List(filter repository.ProjectListFilter) ([]models.Project, int64, error) {
	return s.repo.List(filter)
}

// GetByID returns a project.
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// ProjectSubmitInput is the proposal payload.
type ProjectSubmitInput struct {
	Title          string
	Description    string
	Category       string
	TargetAmount   decimal.Decimal
	Location       string
	SubmitterID    *uint
	SubmitterName  string
	Beneficiaries  string
	ExpectedImpact string
	ProjectPlan    string
}

// Submit files a proposal. New projects start in review with a zero
// balance and no supporters.
func (s *ProjectService) Submit(input ProjectSubmitInput) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	p := &models.Project{
		Title:          title,
		Description:    input.Description,
		Category:       strings.TrimSpace(input.Category),
		TargetAmount:   models.NewMoneyFromDecimal(input.TargetAmount),
		CurrentAmount:  models.NewMoneyFromDecimal(decimal.Zero),
		Location:       strings.TrimSpace(input.Location),
		Status:         models.ProjectPendingReview,
		SubmitterID:    input.SubmitterID,
		SubmitterName:  strings.TrimSpace(input.SubmitterName),
		Supporters:     0,
		Beneficiaries:  input.Beneficiaries,
		ExpectedImpact: input.ExpectedImpact,
		ProjectPlan:    input.ProjectPlan,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}
