package service

import (
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"gorm.io/gorm"
)

// CompetitionService manages competitions, entries and voting.
type CompetitionService struct {
	repo repository.CompetitionRepository
}

// NewCompetitionService creates a competition service.
func NewCompetitionService(repo repository.CompetitionRepository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

// List returns competitions matching the filter.
func (s *CompetitionService) List(filter repository.CompetitionListFilter) ([]models.Competition, int64, error) {
	return s.repo.List(filter)
}

// GetByID returns a competition with its participants.
func (s *CompetitionService) GetByID(id uint) (*models.Competition, []models.CompetitionParticipant, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, ErrNotFound
	}
	participants, err := s.repo.ListParticipants(id)
	if err != nil {
		return nil, nil, err
	}
	return c, participants, nil
}

// CompetitionCreateInput is the creation payload.
type CompetitionCreateInput struct {
	Title       string
	Description string
	Prize       string
	StartDate   *time.Time
	EndDate     *time.Time
	MaxEntries  int
	Location    string
}

// Create opens a competition.
func (s *CompetitionService) Create(input CompetitionCreateInput) (*models.Competition, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	c := &models.Competition{
		Title:       title,
		Description: input.Description,
		Prize:       input.Prize,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MaxEntries:  input.MaxEntries,
		Location:    strings.TrimSpace(input.Location),
		Status:      models.CompetitionActive,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ParticipantInput is the entry payload.
type ParticipantInput struct {
	UserID     *uint
	Name       string
	Phone      string
	PictureURL string
}

// AddParticipant registers an entry. The entry counter moves with the
// insert in one transaction.
func (s *CompetitionService) AddParticipant(competitionID uint, input ParticipantInput) (*models.CompetitionParticipant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	var created *models.CompetitionParticipant
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		c, err := repoTx.GetByID(competitionID)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrNotFound
		}
		if c.Status != models.CompetitionActive {
			return ErrCompetitionClosed
		}
		if c.MaxEntries > 0 && c.CurrentEntries >= c.MaxEntries {
			return ErrCompetitionClosed
		}

		p := &models.CompetitionParticipant{
			CompetitionID: competitionID,
			UserID:        input.UserID,
			Name:          name,
			Phone:         strings.TrimSpace(input.Phone),
			PictureURL:    strings.TrimSpace(input.PictureURL),
		}
		if err := repoTx.CreateParticipant(p); err != nil {
			return err
		}
		c.CurrentEntries++
		if err := repoTx.Update(c); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Vote records one vote for a participant. A voter gets a single vote
// per competition; the unique index backs the service check.
func (s *CompetitionService) Vote(competitionID, participantID, voterID uint) (*models.CompetitionParticipant, error) {
	if voterID == 0 {
		return nil, ErrInvalidInput
	}

	var participant *models.CompetitionParticipant
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		c, err := repoTx.GetByID(competitionID)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrNotFound
		}
		if c.Status != models.CompetitionActive {
			return ErrCompetitionClosed
		}

		p, err := repoTx.GetParticipantByID(participantID)
		if err != nil {
			return err
		}
		if p == nil || p.CompetitionID != competitionID {
			return ErrNotFound
		}

		voted, err := repoTx.HasVoted(competitionID, voterID)
		if err != nil {
			return err
		}
		if voted {
			return ErrAlreadyVoted
		}

		if err := repoTx.CreateVote(&models.CompetitionVote{
			CompetitionID: competitionID,
			ParticipantID: participantID,
			VoterID:       voterID,
		}); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyVoted
			}
			return err
		}

		p.VoteCount++
		if err := tx.Model(&models.CompetitionParticipant{}).
			Where("id = ?", p.ID).
			Update("vote_count", p.VoteCount).Error; err != nil {
			return err
		}
		participant = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}
