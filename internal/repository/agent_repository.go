package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// AgentRepository is the agent data-access interface. Withdrawal
// approval runs inside Transaction with a tx-bound copy.
type AgentRepository interface {
	GetByID(id uint) (*models.Agent, error)
	GetByUserID(userID uint) (*models.Agent, error)
	GetByReferralCode(code string) (*models.Agent, error)
	Create(agent *models.Agent) error
	Update(agent *models.Agent) error
	List(filter AgentListFilter) ([]models.Agent, int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AgentRepository
}

// GormAgentRepository is the GORM implementation.
type GormAgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates an agent repository.
func NewAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormAgentRepository) WithTx(tx *gorm.DB) AgentRepository {
	if tx == nil {
		return r
	}
	return &GormAgentRepository{db: tx}
}

// Transaction runs fn in a transaction.
func (r *GormAgentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID looks an agent up by id.
func (r *GormAgentRepository) GetByID(id uint) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.First(&agent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

// GetByUserID looks an agent up by owning user.
func (r *GormAgentRepository) GetByUserID(userID uint) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.Where("user_id = ?", userID).First(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

// GetByReferralCode looks an agent up by referral code.
func (r *GormAgentRepository) GetByReferralCode(code string) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.Where("referral_code = ?", code).First(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

// Create inserts an agent.
func (r *GormAgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// Update saves an agent.
func (r *GormAgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

// List returns agents matching the filter.
func (r *GormAgentRepository) List(filter AgentListFilter) ([]models.Agent, int64, error) {
	query := r.db.Model(&models.Agent{})

	if filter.AgentType != "" {
		query = query.Where("agent_type = ?", filter.AgentType)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var agents []models.Agent
	if err := query.Order("created_at DESC").Find(&agents).Error; err != nil {
		return nil, 0, err
	}
	return agents, total, nil
}
