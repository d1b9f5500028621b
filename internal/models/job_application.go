package models

import (
	"time"

	"gorm.io/gorm"
)

// Job application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// JobApplication is a candidate's application to a job posting.
type JobApplication struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	JobID           uint           `gorm:"not null;index" json:"job_id"`
	ApplicantID     *uint          `gorm:"index" json:"applicant_id"`
	FullName        string         `gorm:"not null" json:"full_name"`
	Email           string         `gorm:"not null" json:"email"`
	Phone           string         `gorm:"type:varchar(32)" json:"phone"`
	ResumeURL       string         `gorm:"type:text" json:"resume_url"`
	CoverLetter     string         `gorm:"type:text" json:"cover_letter"`
	Skills          StringArray    `gorm:"type:json" json:"skills"`
	ExperienceYears int            `gorm:"not null;default:0" json:"experience_years"`
	Education       string         `gorm:"type:text" json:"education"`
	WorkExperience  string         `gorm:"type:text" json:"work_experience"`
	PortfolioURL    string         `gorm:"type:text" json:"portfolio_url"`
	ExpectedSalary  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"expected_salary"`
	AvailableFrom   *time.Time     `json:"available_from"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AppliedAt       time.Time      `gorm:"index" json:"applied_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Job Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

// TableName sets the table name.
func (JobApplication) TableName() string {
	return "job_applications"
}
