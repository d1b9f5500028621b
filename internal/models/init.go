package models

import (
	"errors"
	"strings"

	"github.com/elverra/zenika-api/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultAdmin ensures an admin account exists. Called once at
// startup so a fresh deployment is reachable.
func InitDefaultAdmin(email, password string) error {
	var count int64
	DB.Model(&UserRole{}).Where("role = ?", RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "admin@elverraglobal.com"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Email:          strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:   string(hash),
		FullName:       "Administrator",
		MembershipTier: TierElite,
		EmailVerified:  true,
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		var existing User
		err := tx.Where("email = ?", admin.Email).First(&existing).Error
		switch {
		case err == nil:
			admin = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		default:
			return err
		}
		if err := tx.Create(&UserRole{UserID: admin.ID, Role: RoleAdmin}).Error; err != nil {
			return err
		}
		if password == "admin123" {
			logger.Warnw("default_admin_created_with_default_password", "email", admin.Email)
			logger.Warnw("default_admin_password_change_required", "email", admin.Email)
		} else {
			logger.Warnw("default_admin_created", "email", admin.Email, "password_hidden", true)
		}
		return nil
	})
}
