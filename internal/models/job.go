package models

import (
	"time"

	"gorm.io/gorm"
)

// Job is a job board posting.
type Job struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	CompanyID           uint           `gorm:"not null;index" json:"company_id"`
	Title               string         `gorm:"not null" json:"title"`
	Description         string         `gorm:"type:text" json:"description"`
	Requirements        string         `gorm:"type:text" json:"requirements"`
	Benefits            string         `gorm:"type:text" json:"benefits"`
	SalaryMin           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"salary_min"`
	SalaryMax           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"salary_max"`
	Location            string         `gorm:"type:varchar(200);index" json:"location"`
	JobType             string         `gorm:"type:varchar(40)" json:"job_type"`
	ExperienceLevel     string         `gorm:"type:varchar(40)" json:"experience_level"`
	Skills              StringArray    `gorm:"type:json" json:"skills"`
	IsRemote            bool           `gorm:"not null;default:false" json:"is_remote"`
	IsActive            bool           `gorm:"not null;default:true;index" json:"is_active"`
	ApplicationDeadline *time.Time     `json:"application_deadline"`
	PostedBy            *uint          `json:"posted_by"`
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	Company Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// TableName sets the table name.
func (Job) TableName() string {
	return "jobs"
}
