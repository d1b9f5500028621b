package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment gateways.
const (
	GatewayOrangeMoney = "orange_money"
	GatewaySamaMoney   = "sama_money"
)

// Payment attempt statuses.
const (
	PaymentInitiated = "initiated"
	PaymentSuccess   = "success"
	PaymentFailed    = "failed"
	PaymentExpired   = "expired"
)

// PaymentAttempt tracks a mobile-money payment from initiation through
// the vendor callback.
type PaymentAttempt struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Gateway         string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_payment_attempts_gw_ref" json:"gateway"`
	Reference       string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_payment_attempts_gw_ref" json:"reference"`
	UserID          *uint          `gorm:"index" json:"user_id"`
	Amount          Money          `gorm:"type:decimal(20,2);not null" json:"amount"`
	Currency        string         `gorm:"type:varchar(10);not null;default:'OUV'" json:"currency"`
	CustomerPhone   string         `gorm:"type:varchar(32)" json:"customer_phone"`
	CustomerEmail   string         `gorm:"type:varchar(200)" json:"customer_email"`
	CustomerName    string         `gorm:"type:varchar(120)" json:"customer_name"`
	Purpose         string         `gorm:"type:varchar(60)" json:"purpose"`
	Status          string         `gorm:"type:varchar(20);not null;default:'initiated';index" json:"status"`
	ProviderTxnID   string         `gorm:"type:varchar(128)" json:"provider_txn_id"`
	PaymentURL      string         `gorm:"type:text" json:"payment_url"`
	ProviderPayload JSON           `gorm:"type:json" json:"provider_payload"`
	CallbackAt      *time.Time     `json:"callback_at"`
	ExpiresAt       *time.Time     `gorm:"index" json:"expires_at"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (PaymentAttempt) TableName() string {
	return "payment_attempts"
}
