package models

import (
	"time"

	"gorm.io/gorm"
)

// Merchant is a partner business offering a membership discount.
type Merchant struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	BusinessName       string         `gorm:"not null;index" json:"business_name"`
	ContactName        string         `gorm:"type:varchar(120)" json:"contact_name"`
	ContactEmail       string         `gorm:"type:varchar(200)" json:"contact_email"`
	ContactPhone       string         `gorm:"type:varchar(32)" json:"contact_phone"`
	BusinessType       string         `gorm:"type:varchar(100)" json:"business_type"`
	DiscountPercentage int            `gorm:"not null;default:0" json:"discount_percentage"`
	Sector             string         `gorm:"type:varchar(100);index" json:"sector"`
	Location           string         `gorm:"type:varchar(200);index" json:"location"`
	LogoURL            string         `gorm:"type:text" json:"logo_url"`
	Description        string         `gorm:"type:text" json:"description"`
	IsFeatured         bool           `gorm:"not null;default:false;index" json:"is_featured"`
	IsActive           bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Merchant) TableName() string {
	return "merchants"
}
