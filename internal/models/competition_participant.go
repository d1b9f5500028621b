package models

import (
	"time"

	"gorm.io/gorm"
)

// CompetitionParticipant is an entry in a competition.
type CompetitionParticipant struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CompetitionID uint           `gorm:"not null;index" json:"competition_id"`
	UserID        *uint          `json:"user_id"`
	Name          string         `gorm:"not null" json:"name"`
	Phone         string         `gorm:"type:varchar(32)" json:"phone"`
	PictureURL    string         `gorm:"type:text" json:"picture_url"`
	VoteCount     int            `gorm:"not null;default:0" json:"vote_count"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Competition Competition `gorm:"foreignKey:CompetitionID" json:"competition,omitempty"`
}

// TableName sets the table name.
func (CompetitionParticipant) TableName() string {
	return "competition_participants"
}
