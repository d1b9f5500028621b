package service

import (
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// PaymentPlanService manages installment schedules.
type PaymentPlanService struct {
	repo repository.PaymentPlanRepository
}

// NewPaymentPlanService creates a payment plan service.
func NewPaymentPlanService(repo repository.PaymentPlanRepository) *PaymentPlanService {
	return &PaymentPlanService{repo: repo}
}

// List returns plans matching the filter.
func (s *PaymentPlanService) List(filter repository.PaymentPlanListFilter) ([]models.PaymentPlan, int64, error) {
	return s.repo.List(filter)
}

// PlanCreateInput is the installment plan payload.
type PlanCreateInput struct {
	UserID           uint
	ProductName      string
	TotalAmount      decimal.Decimal
	DownPayment      decimal.Decimal
	MonthlyPayment   decimal.Decimal
	NumberOfPayments int
	InterestRate     decimal.Decimal
	StartDate        *time.Time
}

// Create opens a plan. The first due date is one month after start.
func (s *PaymentPlanService) Create(input PlanCreateInput) (*models.PaymentPlan, error) {
	if input.UserID == 0 || strings.TrimSpace(input.ProductName) == "" {
		return nil, ErrInvalidInput
	}
	if input.TotalAmount.LessThanOrEqual(decimal.Zero) || input.NumberOfPayments <= 0 {
		return nil, ErrInvalidInput
	}

	start := time.Now()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	nextDue := start.AddDate(0, 1, 0)
	remaining := input.TotalAmount.Sub(input.DownPayment).Round(2)
	if remaining.IsNegative() {
		return nil, ErrInvalidInput
	}

	plan := &models.PaymentPlan{
		UserID:           input.UserID,
		ProductName:      strings.TrimSpace(input.ProductName),
		TotalAmount:      models.NewMoneyFromDecimal(input.TotalAmount),
		DownPayment:      models.NewMoneyFromDecimal(input.DownPayment),
		MonthlyPayment:   models.NewMoneyFromDecimal(input.MonthlyPayment),
		NumberOfPayments: input.NumberOfPayments,
		InterestRate:     models.NewMoneyFromDecimal(input.InterestRate),
		Status:           models.PlanActive,
		StartDate:        &start,
		NextPaymentDate:  &nextDue,
		TotalPaid:        models.NewMoneyFromDecimal(input.DownPayment),
		RemainingBalance: models.NewMoneyFromDecimal(remaining),
	}
	if err := s.repo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RecordPayment applies one installment to a plan.
func (s *PaymentPlanService) RecordPayment(id uint, amount decimal.Decimal) (*models.PaymentPlan, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	if plan.Status != models.PlanActive {
		return nil, ErrStatusConflict
	}

	plan.CompletedPayments++
	plan.TotalPaid = models.NewMoneyFromDecimal(plan.TotalPaid.Decimal.Add(amount))
	remaining := plan.RemainingBalance.Decimal.Sub(amount).Round(2)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	plan.RemainingBalance = models.NewMoneyFromDecimal(remaining)

	if plan.CompletedPayments >= plan.NumberOfPayments || remaining.IsZero() {
		plan.Status = models.PlanCompleted
		plan.NextPaymentDate = nil
	} else if plan.NextPaymentDate != nil {
		next := plan.NextPaymentDate.AddDate(0, 1, 0)
		plan.NextPaymentDate = &next
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RollDueDates advances overdue active plans by one month. Run by the
// scheduler; overdue plans keep accruing until paid.
func (s *PaymentPlanService) RollDueDates(now time.Time) (int, error) {
	plans, _, err := s.repo.List(repository.PaymentPlanListFilter{
		Status: models.PlanActive,
		DueBy:  &now,
	})
	if err != nil {
		return 0, err
	}

	rolled := 0
	for i := range plans {
		plan := plans[i]
		if plan.NextPaymentDate == nil {
			continue
		}
		next := plan.NextPaymentDate.AddDate(0, 1, 0)
		plan.NextPaymentDate = &next
		if err := s.repo.Update(&plan); err != nil {
			logger.Warnw("payment_plan_roll_failed", "plan_id", plan.ID, "error", err)
			continue
		}
		rolled++
	}
	return rolled, nil
}
