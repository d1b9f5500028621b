package models

import (
	"time"

	"gorm.io/gorm"
)

// AgentWithdrawal is a commission payout request. Approval debits the
// agent's pending commissions in the same transaction as the status flip.
type AgentWithdrawal struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	AgentID              uint           `gorm:"not null;index" json:"agent_id"`
	Amount               Money          `gorm:"type:decimal(20,2);not null" json:"amount"`
	WithdrawalMethod     string         `gorm:"type:varchar(40);not null" json:"withdrawal_method"`
	AccountDetails       JSON           `gorm:"type:json" json:"account_details"`
	Status               string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RequestedAt          time.Time      `gorm:"index" json:"requested_at"`
	ProcessedAt          *time.Time     `json:"processed_at"`
	ProcessedBy          *uint          `json:"processed_by"`
	TransactionReference string         `gorm:"type:varchar(64)" json:"transaction_reference"`
	ProcessingNotes      string         `gorm:"type:text" json:"processing_notes"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	Agent Agent `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}

// TableName sets the table name.
func (AgentWithdrawal) TableName() string {
	return "agent_withdrawals"
}
