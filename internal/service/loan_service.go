package service

import (
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// LoanService manages micro-lending applications.
type LoanService struct {
	repo repository.LoanApplicationRepository
}

// NewLoanService creates a loan service.
func NewLoanService(repo repository.LoanApplicationRepository) *LoanService {
	return &LoanService{repo: repo}
}

// List returns applications matching the filter.
func (s *LoanService) List(filter repository.LoanApplicationListFilter) ([]models.LoanApplication, int64, error) {
	return s.repo.List(filter)
}

// GetByID returns an application.
func (s *LoanService) GetByID(id uint) (*models.LoanApplication, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

// LoanApplyInput is the borrowing request payload.
type LoanApplyInput struct {
	UserID             *uint
	LoanType           string
	RequestedAmount    decimal.Decimal
	MonthlyIncome      decimal.Decimal
	EmploymentStatus   string
	EmploymentDuration string
	Purpose            string
	Collateral         string
}

// Apply files a loan application.
func (s *LoanService) Apply(input LoanApplyInput) (*models.LoanApplication, error) {
	loanType := strings.TrimSpace(input.LoanType)
	if loanType == "" || input.RequestedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	app := &models.LoanApplication{
		UserID:             input.UserID,
		LoanType:           loanType,
		RequestedAmount:    models.NewMoneyFromDecimal(input.RequestedAmount),
		MonthlyIncome:      models.NewMoneyFromDecimal(input.MonthlyIncome),
		EmploymentStatus:   strings.TrimSpace(input.EmploymentStatus),
		EmploymentDuration: strings.TrimSpace(input.EmploymentDuration),
		Purpose:            input.Purpose,
		Collateral:         input.Collateral,
		Status:             models.ApprovalPending,
	}
	if err := s.repo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

// LoanDecisionInput carries approval terms.
type LoanDecisionInput struct {
	ApprovedAmount decimal.Decimal
	InterestRate   decimal.Decimal
	TermMonths     int
	Notes          string
}

// Approve grants a pending loan with its terms.
func (s *LoanService) Approve(id, adminID uint, input LoanDecisionInput) (*models.LoanApplication, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	if app.Status != models.ApprovalPending {
		return nil, ErrStatusConflict
	}

	amount := input.ApprovedAmount
	if amount.LessThanOrEqual(decimal.Zero) {
		amount = app.RequestedAmount.Decimal
	}

	now := time.Now()
	app.Status = models.ApprovalApproved
	app.ApprovedAmount = models.NewMoneyFromDecimal(amount)
	app.InterestRate = models.NewMoneyFromDecimal(input.InterestRate)
	app.TermMonths = input.TermMonths
	app.ProcessingNotes = strings.TrimSpace(input.Notes)
	app.ApprovedAt = &now
	app.ApprovedBy = &adminID
	if err := s.repo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Reject declines a pending loan.
func (s *LoanService) Reject(id, adminID uint, notes string) (*models.LoanApplication, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	if app.Status != models.ApprovalPending {
		return nil, ErrStatusConflict
	}

	now := time.Now()
	app.Status = models.ApprovalRejected
	app.ProcessingNotes = strings.TrimSpace(notes)
	app.ApprovedAt = &now
	app.ApprovedBy = &adminID
	if err := s.repo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus is the generic status endpoint used by the admin UI.
// Pending is the only mutable state.
func (s *LoanService) UpdateStatus(id, adminID uint, status, notes string) (*models.LoanApplication, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.ApprovalApproved:
		return s.Approve(id, adminID, LoanDecisionInput{Notes: notes})
	case models.ApprovalRejected:
		return s.Reject(id, adminID, notes)
	default:
		return nil, ErrInvalidInput
	}
}
