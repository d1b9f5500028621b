package models

import "time"

// DiscountUsage records a member redeeming a merchant discount.
type DiscountUsage struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	MerchantID         uint      `gorm:"not null;index" json:"merchant_id"`
	DiscountPercentage int       `gorm:"not null;default:0" json:"discount_percentage"`
	AmountSaved        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount_saved"`
	UsedAt             time.Time `gorm:"index" json:"used_at"`
	CreatedAt          time.Time `json:"created_at"`

	Merchant Merchant `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
}

// TableName sets the table name.
func (DiscountUsage) TableName() string {
	return "discount_usages"
}
