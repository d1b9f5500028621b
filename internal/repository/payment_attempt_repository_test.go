package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPaymentAttemptRepoTest(t *testing.T) (*GormPaymentAttemptRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:payment_attempt_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.PaymentAttempt{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewPaymentAttemptRepository(db), db
}

func newTestAttempt(gateway, reference, status string, expiresAt *time.Time) *models.PaymentAttempt {
	return &models.PaymentAttempt{
		Gateway:   gateway,
		Reference: reference,
		Amount:    models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
		Currency:  "OUV",
		Status:    status,
		ExpiresAt: expiresAt,
	}
}

func TestPaymentAttemptGetByReference(t *testing.T) {
	repo, _ := setupPaymentAttemptRepoTest(t)

	attempt := newTestAttempt(models.GatewayOrangeMoney, "OM-1", models.PaymentInitiated, nil)
	if err := repo.Create(attempt); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.GetByReference(models.GatewayOrangeMoney, "OM-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found == nil || found.ID != attempt.ID {
		t.Fatalf("unexpected attempt: %+v", found)
	}

	// Same reference on the other gateway is a different attempt space.
	missing, err := repo.GetByReference(models.GatewaySamaMoney, "OM-1")
	if err != nil {
		t.Fatalf("lookup errored: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for foreign gateway, got: %+v", missing)
	}
}

func TestPaymentAttemptReferenceUniquePerGateway(t *testing.T) {
	repo, _ := setupPaymentAttemptRepoTest(t)

	if err := repo.Create(newTestAttempt(models.GatewayOrangeMoney, "OM-2", models.PaymentInitiated, nil)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newTestAttempt(models.GatewayOrangeMoney, "OM-2", models.PaymentInitiated, nil)); err == nil {
		t.Fatalf("duplicate reference on the same gateway should fail")
	}
	if err := repo.Create(newTestAttempt(models.GatewaySamaMoney, "OM-2", models.PaymentInitiated, nil)); err != nil {
		t.Fatalf("same reference on the other gateway should pass: %v", err)
	}
}

func TestPaymentAttemptExpireStale(t *testing.T) {
	repo, db := setupPaymentAttemptRepoTest(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	stale := newTestAttempt(models.GatewayOrangeMoney, "OM-stale", models.PaymentInitiated, &past)
	fresh := newTestAttempt(models.GatewayOrangeMoney, "OM-fresh", models.PaymentInitiated, &future)
	settled := newTestAttempt(models.GatewayOrangeMoney, "OM-paid", models.PaymentSuccess, &past)
	for _, a := range []*models.PaymentAttempt{stale, fresh, settled} {
		if err := repo.Create(a); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	touched, err := repo.ExpireStale(time.Now())
	if err != nil {
		t.Fatalf("expire stale failed: %v", err)
	}
	if touched != 1 {
		t.Fatalf("expected 1 expired row, got: %d", touched)
	}

	var reloaded models.PaymentAttempt
	if err := db.First(&reloaded, stale.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Status != models.PaymentExpired {
		t.Fatalf("stale attempt not expired: %s", reloaded.Status)
	}
	reloaded = models.PaymentAttempt{}
	if err := db.First(&reloaded, settled.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Status != models.PaymentSuccess {
		t.Fatalf("settled attempt was touched: %s", reloaded.Status)
	}
}

func TestPaymentAttemptListFilters(t *testing.T) {
	repo, _ := setupPaymentAttemptRepoTest(t)

	userID := uint(7)
	mine := newTestAttempt(models.GatewayOrangeMoney, "OM-mine", models.PaymentSuccess, nil)
	mine.UserID = &userID
	other := newTestAttempt(models.GatewaySamaMoney, "SM-other", models.PaymentFailed, nil)
	for _, a := range []*models.PaymentAttempt{mine, other} {
		if err := repo.Create(a); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	rows, total, err := repo.List(PaymentAttemptListFilter{UserID: userID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Reference != "OM-mine" {
		t.Fatalf("user filter broken: total=%d rows=%+v", total, rows)
	}

	rows, total, err = repo.List(PaymentAttemptListFilter{Gateway: models.GatewaySamaMoney, Status: models.PaymentFailed})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || rows[0].Reference != "SM-other" {
		t.Fatalf("gateway/status filter broken: total=%d", total)
	}
}
