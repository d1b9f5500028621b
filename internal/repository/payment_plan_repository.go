package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// PaymentPlanRepository is the installment plan data-access interface.
type PaymentPlanRepository interface {
	GetByID(id uint) (*models.PaymentPlan, error)
	Create(plan *models.PaymentPlan) error
	Update(plan *models.PaymentPlan) error
	List(filter PaymentPlanListFilter) ([]models.PaymentPlan, int64, error)
}

// GormPaymentPlanRepository is the GORM implementation.
type GormPaymentPlanRepository struct {
	db *gorm.DB
}

// NewPaymentPlanRepository creates a payment plan repository.
func NewPaymentPlanRepository(db *gorm.DB) *GormPaymentPlanRepository {
	return &GormPaymentPlanRepository{db: db}
}

// GetByID looks a plan up by id.
func (r *GormPaymentPlanRepository) GetByID(id uint) (*models.PaymentPlan, error) {
	var plan models.PaymentPlan
	if err := r.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// Create inserts a plan.
func (r *GormPaymentPlanRepository) Create(plan *models.PaymentPlan) error {
	return r.db.Create(plan).Error
}

// Update saves a plan.
func (r *GormPaymentPlanRepository) Update(plan *models.PaymentPlan) error {
	return r.db.Save(plan).Error
}

// List returns plans matching the filter. DueBy selects active plans
// whose next payment date has passed, used by the scheduler.
func (r *GormPaymentPlanRepository) List(filter PaymentPlanListFilter) ([]models.PaymentPlan, int64, error) {
	query := r.db.Model(&models.PaymentPlan{})

	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DueBy != nil {
		query = query.Where("next_payment_date IS NOT NULL AND next_payment_date <= ?", *filter.DueBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.PaymentPlan
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
