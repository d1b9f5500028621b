package models

import (
	"time"

	"gorm.io/gorm"
)

// Agent types.
const (
	AgentTypeAffiliate   = "affiliate"
	AgentTypeDistributor = "distributor"
)

// Approval statuses shared by agents, withdrawals and loan applications.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Agent is a referral program member (affiliate or distributor).
type Agent struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	UserID               uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	AgentType            string         `gorm:"type:varchar(20);not null;default:'affiliate'" json:"agent_type"`
	ReferralCode         string         `gorm:"type:varchar(16);not null;uniqueIndex" json:"referral_code"`
	CommissionsTotal     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commissions_total"`
	CommissionsPending   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commissions_pending"`
	CommissionsWithdrawn Money          `gorm:"type:decimal(20,2);not null;default:0" json:"commissions_withdrawn"`
	IsActive             bool           `gorm:"not null;default:true" json:"is_active"`
	ApprovalStatus       string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"approval_status"`
	ApprovedAt           *time.Time     `json:"approved_at"`
	ApprovedBy           *uint          `json:"approved_by"`
	RejectionReason      string         `gorm:"type:text" json:"rejection_reason"`
	ApplicationNotes     string         `gorm:"type:text" json:"application_notes"`
	CreatedAt            time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Agent) TableName() string {
	return "agents"
}
