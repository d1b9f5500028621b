package models

import (
	"time"

	"gorm.io/gorm"
)

// Company is an employer on the job board.
type Company struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Website     string         `gorm:"type:text" json:"website"`
	LogoURL     string         `gorm:"type:text" json:"logo_url"`
	Industry    string         `gorm:"type:varchar(100)" json:"industry"`
	Size        string         `gorm:"type:varchar(40)" json:"size"`
	Location    string         `gorm:"type:varchar(200)" json:"location"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Company) TableName() string {
	return "companies"
}
