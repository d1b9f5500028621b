package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDiscountServiceTest(t *testing.T) (*DiscountService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:discount_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Merchant{},
		&models.DiscountUsage{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewDiscountService(repository.NewMerchantRepository(db)), db
}

func TestCreateMerchantValidatesDiscount(t *testing.T) {
	svc, _ := setupDiscountServiceTest(t)

	if _, err := svc.CreateMerchant(MerchantCreateInput{BusinessName: "", DiscountPercentage: 10}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name should be rejected, got: %v", err)
	}
	if _, err := svc.CreateMerchant(MerchantCreateInput{BusinessName: "Shop", DiscountPercentage: 150}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("out-of-range discount should be rejected, got: %v", err)
	}

	m, err := svc.CreateMerchant(MerchantCreateInput{
		BusinessName:       "  Pharmacie du Fleuve  ",
		ContactEmail:       "CONTACT@Fleuve.ml",
		DiscountPercentage: 15,
		Sector:             "health",
	})
	if err != nil {
		t.Fatalf("create merchant failed: %v", err)
	}
	if m.BusinessName != "Pharmacie du Fleuve" {
		t.Fatalf("name should be trimmed, got %q", m.BusinessName)
	}
	if m.ContactEmail != "contact@fleuve.ml" {
		t.Fatalf("email should be normalized, got %q", m.ContactEmail)
	}
	if !m.IsActive {
		t.Fatalf("new merchant should be active")
	}
}

func TestRecordUsageSnapshotsPercentage(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)

	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	user := models.User{Email: "member@example.com", PasswordHash: "hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	merchant, err := svc.CreateMerchant(MerchantCreateInput{BusinessName: "Azalai Electronics", DiscountPercentage: 20})
	if err != nil {
		t.Fatalf("create merchant failed: %v", err)
	}

	usage, err := svc.RecordUsage(user.ID, merchant.ID, decimal.NewFromInt(2500))
	if err != nil {
		t.Fatalf("record usage failed: %v", err)
	}
	if usage.DiscountPercentage != 20 {
		t.Fatalf("usage should snapshot the merchant percentage, got %d", usage.DiscountPercentage)
	}
	if !usage.UsedAt.Equal(fixed) {
		t.Fatalf("unexpected used_at: %v", usage.UsedAt)
	}

	if _, err := svc.RecordUsage(user.ID, 999, decimal.NewFromInt(1)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown merchant should report ErrNotFound, got: %v", err)
	}
	if _, err := svc.RecordUsage(0, merchant.ID, decimal.NewFromInt(1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("anonymous usage should be rejected, got: %v", err)
	}

	rows, total, err := svc.ListUsage(user.ID, 1, 10)
	if err != nil {
		t.Fatalf("list usage failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected one usage row, got total=%d len=%d", total, len(rows))
	}
}
