package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// AgentWithdrawalRepository is the payout request data-access interface.
type AgentWithdrawalRepository interface {
	GetByID(id uint) (*models.AgentWithdrawal, error)
	Create(w *models.AgentWithdrawal) error
	Update(w *models.AgentWithdrawal) error
	List(filter WithdrawalListFilter) ([]models.AgentWithdrawal, int64, error)
	WithTx(tx *gorm.DB) AgentWithdrawalRepository
}

// GormAgentWithdrawalRepository is the GORM implementation.
type GormAgentWithdrawalRepository struct {
	db *gorm.DB
}

// NewAgentWithdrawalRepository creates a withdrawal repository.
func NewAgentWithdrawalRepository(db *gorm.DB) *GormAgentWithdrawalRepository {
	return &GormAgentWithdrawalRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormAgentWithdrawalRepository) WithTx(tx *gorm.DB) AgentWithdrawalRepository {
	if tx == nil {
		return r
	}
	return &GormAgentWithdrawalRepository{db: tx}
}

// GetByID looks a withdrawal up by id.
func (r *GormAgentWithdrawalRepository) GetByID(id uint) (*models.AgentWithdrawal, error) {
	var w models.AgentWithdrawal
	if err := r.db.First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// Create inserts a withdrawal request.
func (r *GormAgentWithdrawalRepository) Create(w *models.AgentWithdrawal) error {
	return r.db.Create(w).Error
}

// Update saves a withdrawal request.
func (r *GormAgentWithdrawalRepository) Update(w *models.AgentWithdrawal) error {
	return r.db.Save(w).Error
}

// List returns withdrawals matching the filter.
func (r *GormAgentWithdrawalRepository) List(filter WithdrawalListFilter) ([]models.AgentWithdrawal, int64, error) {
	query := r.db.Model(&models.AgentWithdrawal{})

	if filter.AgentID > 0 {
		query = query.Where("agent_id = ?", filter.AgentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.AgentWithdrawal
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
