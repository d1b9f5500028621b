package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a marketplace listing posted by a member.
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	SellerID     *uint          `gorm:"index" json:"seller_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Price        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Category     string         `gorm:"type:varchar(100);index" json:"category"`
	Condition    string         `gorm:"type:varchar(40)" json:"condition"`
	Location     string         `gorm:"type:varchar(200)" json:"location"`
	Images       StringArray    `gorm:"type:json" json:"images"`
	ContactPhone string         `gorm:"type:varchar(32)" json:"contact_phone"`
	ContactEmail string         `gorm:"type:varchar(200)" json:"contact_email"`
	IsActive     bool           `gorm:"not null;default:true;index" json:"is_active"`
	IsFeatured   bool           `gorm:"not null;default:false" json:"is_featured"`
	ViewCount    int            `gorm:"not null;default:0" json:"view_count"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
