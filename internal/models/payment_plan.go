package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment plan statuses.
const (
	PlanActive    = "active"
	PlanCompleted = "completed"
	PlanDefaulted = "defaulted"
)

// PaymentPlan is an installment schedule for a purchase.
type PaymentPlan struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	UserID            uint           `gorm:"not null;index" json:"user_id"`
	ProductName       string         `gorm:"not null" json:"product_name"`
	TotalAmount       Money          `gorm:"type:decimal(20,2);not null" json:"total_amount"`
	DownPayment       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"down_payment"`
	MonthlyPayment    Money          `gorm:"type:decimal(20,2);not null" json:"monthly_payment"`
	NumberOfPayments  int            `gorm:"not null" json:"number_of_payments"`
	InterestRate      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"interest_rate"`
	Status            string         `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	StartDate         *time.Time     `json:"start_date"`
	NextPaymentDate   *time.Time     `gorm:"index" json:"next_payment_date"`
	CompletedPayments int            `gorm:"not null;default:0" json:"completed_payments"`
	TotalPaid         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_paid"`
	RemainingBalance  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"remaining_balance"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (PaymentPlan) TableName() string {
	return "payment_plans"
}
