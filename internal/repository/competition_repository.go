package repository

import (
	"errors"

	"github.com/elverra/zenika-api/internal/models"

	"gorm.io/gorm"
)

// CompetitionRepository covers competitions, their participants and
// votes. Vote insertion and the participant counter move together in
// Transaction.
type CompetitionRepository interface {
	GetByID(id uint) (*models.Competition, error)
	Create(c *models.Competition) error
	Update(c *models.Competition) error
	List(filter CompetitionListFilter) ([]models.Competition, int64, error)

	GetParticipantByID(id uint) (*models.CompetitionParticipant, error)
	ListParticipants(competitionID uint) ([]models.CompetitionParticipant, error)
	CreateParticipant(p *models.CompetitionParticipant) error

	HasVoted(competitionID, voterID uint) (bool, error)
	CreateVote(v *models.CompetitionVote) error

	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CompetitionRepository
}

// GormCompetitionRepository is the GORM implementation.
type GormCompetitionRepository struct {
	db *gorm.DB
}

// NewCompetitionRepository creates a competition repository.
func NewCompetitionRepository(db *gorm.DB) *GormCompetitionRepository {
	return &GormCompetitionRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCompetitionRepository) WithTx(tx *gorm.DB) CompetitionRepository {
	if tx == nil {
		return r
	}
	return &GormCompetitionRepository{db: tx}
}

// Transaction runs fn in a transaction.
func (r *GormCompetitionRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID looks a competition up by id.
func (r *GormCompetitionRepository) GetByID(id uint) (*models.Competition, error) {
	var c models.Competition
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a competition.
func (r *GormCompetitionRepository) Create(c *models.Competition) error {
	return r.db.Create(c).Error
}

// Update saves a competition.
func (r *GormCompetitionRepository) Update(c *models.Competition) error {
	return r.db.Save(c).Error
}

// List returns competitions matching the filter.
func (r *GormCompetitionRepository) List(filter CompetitionListFilter) ([]models.Competition, int64, error) {
	query := r.db.Model(&models.Competition{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Competition
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetParticipantByID looks a participant up by id.
func (r *GormCompetitionRepository) GetParticipantByID(id uint) (*models.CompetitionParticipant, error) {
	var p models.CompetitionParticipant
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListParticipants returns the entries of a competition, highest votes
// first.
func (r *GormCompetitionRepository) ListParticipants(competitionID uint) ([]models.CompetitionParticipant, error) {
	var rows []models.CompetitionParticipant
	if err := r.db.Where("competition_id = ?", competitionID).
		Order("vote_count DESC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateParticipant inserts an entry.
func (r *GormCompetitionRepository) CreateParticipant(p *models.CompetitionParticipant) error {
	return r.db.Create(p).Error
}

// HasVoted reports whether the voter already voted in the competition.
func (r *GormCompetitionRepository) HasVoted(competitionID, voterID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CompetitionVote{}).
		Where("competition_id = ? AND voter_id = ?", competitionID, voterID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateVote inserts a vote row.
func (r *GormCompetitionRepository) CreateVote(v *models.CompetitionVote) error {
	return r.db.Create(v).Error
}
