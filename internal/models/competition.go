package models

import (
	"time"

	"gorm.io/gorm"
)

// Competition statuses.
const (
	CompetitionActive    = "active"
	CompetitionCompleted = "completed"
	CompetitionCancelled = "cancelled"
)

// Competition is a public voting competition.
type Competition struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Prize          string         `gorm:"type:text" json:"prize"`
	StartDate      *time.Time     `json:"start_date"`
	EndDate        *time.Time     `json:"end_date"`
	MaxEntries     int            `gorm:"not null;default:0" json:"max_entries"`
	CurrentEntries int            `gorm:"not null;default:0" json:"current_entries"`
	Location       string         `gorm:"type:varchar(200)" json:"location"`
	Status         string         `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Competition) TableName() string {
	return "competitions"
}
