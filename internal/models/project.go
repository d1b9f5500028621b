package models

import (
	"time"

	"gorm.io/gorm"
)

// Project statuses.
const (
	ProjectPendingReview = "pending_review"
	ProjectActive        = "active"
	ProjectFunded        = "funded"
	ProjectClosed        = "closed"
)

// Project is a community crowdfunding proposal.
type Project struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Category       string         `gorm:"type:varchar(100);index" json:"category"`
	TargetAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"target_amount"`
	CurrentAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"current_amount"`
	Location       string         `gorm:"type:varchar(200)" json:"location"`
	Status         string         `gorm:"type:varchar(30);not null;default:'pending_review';index" json:"status"`
	SubmitterID    *uint          `json:"submitter_id"`
	SubmitterName  string         `gorm:"type:varchar(120)" json:"submitter_name"`
	Supporters     int            `gorm:"not null;default:0" json:"supporters"`
	Beneficiaries  string         `gorm:"type:text" json:"beneficiaries"`
	ExpectedImpact string         `gorm:"type:text" json:"expected_impact"`
	ProjectPlan    string         `gorm:"type:text" json:"project_plan"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Project) TableName() string {
	return "projects"
}
