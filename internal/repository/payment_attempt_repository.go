package repository

import (
	"errors"
	"time"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// PaymentAttemptRepository is the payment attempt data-access interface.
type PaymentAttemptRepository interface {
	GetByID(id uint) (*models.PaymentAttempt, error)
	GetByReference(gateway, reference string) (*models.PaymentAttempt, error)
	Create(a *models.PaymentAttempt) error
	Update(a *models.PaymentAttempt) error
	List(filter PaymentAttemptListFilter) ([]models.PaymentAttempt, int64, error)
	ExpireStale(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) PaymentAttemptRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormPaymentAttemptRepository is the GORM implementation.
type GormPaymentAttemptRepository struct {
	db *gorm.DB
}

// NewPaymentAttemptRepository creates a payment attempt repository.
func NewPaymentAttemptRepository(db *gorm.DB) *GormPaymentAttemptRepository {
	return &GormPaymentAttemptRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormPaymentAttemptRepository) WithTx(tx *gorm.DB) PaymentAttemptRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentAttemptRepository{db: tx}
}

// Transaction runs fn in a transaction.
func (r *GormPaymentAttemptRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID looks an attempt up by id.
func (r *GormPaymentAttemptRepository) GetByID(id uint) (*models.PaymentAttempt, error) {
	var a models.PaymentAttempt
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByReference looks an attempt up by gateway and merchant reference.
func (r *GormPaymentAttemptRepository) GetByReference(gateway, reference string) (*models.PaymentAttempt, error) {
	var a models.PaymentAttempt
	if err := r.db.Where("gateway = ? AND reference = ?", gateway, reference).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts an attempt.
func (r *GormPaymentAttemptRepository) Create(a *models.PaymentAttempt) error {
	return r.db.Create(a).Error
}

// Update saves an attempt.
func (r *GormPaymentAttemptRepository) Update(a *models.PaymentAttempt) error {
	return r.db.Save(a).Error
}

// List returns attempts matching the filter.
func (r *GormPaymentAttemptRepository) List(filter PaymentAttemptListFilter) ([]models.PaymentAttempt, int64, error) {
	query := r.db.Model(&models.PaymentAttempt{})

	if filter.Gateway != "" {
		query = query.Where("gateway = ?", filter.Gateway)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.PaymentAttempt
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ExpireStale marks initiated attempts past their deadline as expired
// and returns the number of rows touched.
func (r *GormPaymentAttemptRepository) ExpireStale(cutoff time.Time) (int64, error) {
	res := r.db.Model(&models.PaymentAttempt{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.PaymentInitiated, cutoff).
		Update("status", models.PaymentExpired)
	return res.RowsAffected, res.Error
}
