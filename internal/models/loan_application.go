package models

import (
	"time"

	"gorm.io/gorm"
)

// LoanApplication is a micro-lending request.
type LoanApplication struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	UserID             *uint          `gorm:"index" json:"user_id"`
	LoanType           string         `gorm:"type:varchar(60);not null" json:"loan_type"`
	RequestedAmount    Money          `gorm:"type:decimal(20,2);not null" json:"requested_amount"`
	MonthlyIncome      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"monthly_income"`
	EmploymentStatus   string         `gorm:"type:varchar(60)" json:"employment_status"`
	EmploymentDuration string         `gorm:"type:varchar(60)" json:"employment_duration"`
	Purpose            string         `gorm:"type:text" json:"purpose"`
	Collateral         string         `gorm:"type:text" json:"collateral"`
	Status             string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ProcessingNotes    string         `gorm:"type:text" json:"processing_notes"`
	ApprovedAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"approved_amount"`
	InterestRate       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"interest_rate"`
	TermMonths         int            `gorm:"not null;default:0" json:"term_months"`
	ApprovedAt         *time.Time     `json:"approved_at"`
	ApprovedBy         *uint          `json:"approved_by"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (LoanApplication) TableName() string {
	return "loan_applications"
}
