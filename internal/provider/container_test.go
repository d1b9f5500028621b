package provider

import (
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupContainerTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:container_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return db
}

func TestSeededAdminPassesAdminRBAC(t *testing.T) {
	db := setupContainerTest(t)

	if err := models.InitDefaultAdmin("", ""); err != nil {
		t.Fatalf("init default admin failed: %v", err)
	}
	var admin models.User
	if err := db.Where("email = ?", "admin@elverraglobal.com").First(&admin).Error; err != nil {
		t.Fatalf("load seeded admin failed: %v", err)
	}

	ctn := NewContainer(&config.Config{})
	if ctn.AuthzService == nil {
		t.Fatalf("authz service was not built")
	}

	allowed, err := ctn.AuthzService.EnforceUser(admin.ID, "/api/admin/agents", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if !allowed {
		t.Fatalf("seeded admin is denied on the admin surface")
	}
}

func TestMirrorRoleHoldersCoversManualGrants(t *testing.T) {
	db := setupContainerTest(t)

	agent := models.User{Email: "agent@example.com", PasswordHash: "x", MembershipTier: models.TierBasic}
	if err := db.Create(&agent).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := db.Create(&models.UserRole{UserID: agent.ID, Role: models.RoleAgent}).Error; err != nil {
		t.Fatalf("grant role failed: %v", err)
	}

	ctn := NewContainer(&config.Config{})
	if ctn.AuthzService == nil {
		t.Fatalf("authz service was not built")
	}

	allowed, err := ctn.AuthzService.EnforceUser(agent.ID, "/api/agents/me", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if !allowed {
		t.Fatalf("stored agent role was not mirrored into the enforcer")
	}

	denied, err := ctn.AuthzService.EnforceUser(agent.ID, "/api/admin/agents", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if denied {
		t.Fatalf("agent must not reach the admin surface")
	}
}
