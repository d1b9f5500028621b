package models

import "time"

// CompetitionVote records one vote. A voter may vote once per
// competition, enforced by the composite unique index.
type CompetitionVote struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CompetitionID uint      `gorm:"not null;uniqueIndex:idx_votes_competition_voter" json:"competition_id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	VoterID       uint      `gorm:"not null;uniqueIndex:idx_votes_competition_voter" json:"voter_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the table name.
func (CompetitionVote) TableName() string {
	return "competition_votes"
}
