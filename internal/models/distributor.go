package models

import (
	"time"

	"gorm.io/gorm"
)

// Distributor is a wholesale partner profile.
type Distributor struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	UserID              uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	BusinessName        string         `gorm:"not null" json:"business_name"`
	RegistrationNumber  string         `gorm:"type:varchar(60)" json:"registration_number"`
	DistributorType     string         `gorm:"type:varchar(40)" json:"distributor_type"`
	ContactPhone        string         `gorm:"type:varchar(32)" json:"contact_phone"`
	ContactEmail        string         `gorm:"type:varchar(200)" json:"contact_email"`
	TerritoryCoverage   StringArray    `gorm:"type:json" json:"territory_coverage"`
	ProductsDistributed StringArray    `gorm:"type:json" json:"products_distributed"`
	CommissionRate      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commission_rate"`
	TotalSales          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_sales"`
	CommissionEarned    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commission_earned"`
	CommissionPending   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commission_pending"`
	CommissionWithdrawn Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commission_withdrawn"`
	IsActive            bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Distributor) TableName() string {
	return "distributors"
}
