package models

import (
	"time"

	"gorm.io/gorm"
)

// Membership tiers.
const (
	TierBasic   = "basic"
	TierPremium = "premium"
	TierElite   = "elite"
)

// User is a platform member account.
type User struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	Email             string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string         `gorm:"not null" json:"-"`
	FullName          string         `gorm:"default:''" json:"full_name"`
	Phone             string         `gorm:"type:varchar(32);index" json:"phone"`
	Address           string         `gorm:"default:''" json:"address"`
	City              string         `gorm:"type:varchar(100)" json:"city"`
	Country           string         `gorm:"type:varchar(100)" json:"country"`
	DateOfBirth       *time.Time     `json:"date_of_birth"`
	ProfilePictureURL string         `gorm:"type:text" json:"profile_picture_url"`
	EmailVerified     bool           `gorm:"not null;default:false" json:"email_verified"`
	PhoneVerified     bool           `gorm:"not null;default:false" json:"phone_verified"`
	MembershipTier    string         `gorm:"type:varchar(20);not null;default:'basic'" json:"membership_tier"`
	MembershipExpiry  *time.Time     `json:"membership_expiry"`
	CreditsEarned     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"credits_earned"`
	CreditsSpent      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"credits_spent"`
	CreditsBalance    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"credits_balance"`
	TokenVersion      uint64         `gorm:"not null;default:0" json:"-"`
	LastLoginAt       *time.Time     `json:"last_login_at"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
