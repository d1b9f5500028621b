package models

import "time"

// Platform roles.
const (
	RoleAdmin    = "admin"
	RoleAgent    = "agent"
	RoleMerchant = "merchant"
	RoleUser     = "user"
)

// UserRole grants a role to a user. Roles are mirrored into casbin
// grouping policies on write.
type UserRole struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_roles_user_role" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (UserRole) TableName() string {
	return "user_roles"
}
