package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/payment/orange"
	"github.com/elverra/zenika-api/internal/payment/sama"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPaymentServiceTest(t *testing.T, cfg *config.Config) (*PaymentService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:payment_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.PaymentAttempt{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	attemptRepo := repository.NewPaymentAttemptRepository(db)
	userRepo := repository.NewUserRepository(db)
	return NewPaymentService(cfg, attemptRepo, userRepo, queue.NewDisabledClient()), db
}

func paymentTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{BaseURL: "https://app.example.com"},
		Payment: config.PaymentConfig{
			ExpireMinutes: 15,
		},
	}
}

func TestInitiateOrangeMissingCredentialsMakesNoCall(t *testing.T) {
	var calls int64
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer vendor.Close()

	cfg := paymentTestConfig()
	cfg.Payment.Orange = config.OrangeConfig{
		BaseURL:  vendor.URL,
		TokenURL: vendor.URL + "/token",
		// credentials intentionally absent
	}
	svc, db := setupPaymentServiceTest(t, cfg)

	_, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{
		Amount: decimal.NewFromInt(5000),
	})
	if !errors.Is(err, orange.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got: %v", err)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Fatalf("vendor was called %d times despite missing credentials", calls)
	}
	var count int64
	db.Model(&models.PaymentAttempt{}).Count(&count)
	if count != 0 {
		t.Fatalf("attempt persisted despite config error: %d", count)
	}
}

func TestInitiateSamaMissingCredentialsMakesNoCall(t *testing.T) {
	var calls int64
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer vendor.Close()

	cfg := paymentTestConfig()
	cfg.Payment.Sama = config.SamaConfig{BaseURL: vendor.URL}
	svc, _ := setupPaymentServiceTest(t, cfg)

	_, err := svc.InitiateSamaMoney(context.Background(), InitiateInput{
		Amount: decimal.NewFromInt(5000),
	})
	if !errors.Is(err, sama.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got: %v", err)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Fatalf("vendor was called %d times despite missing credentials", calls)
	}
}

func newOrangeVendor(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/token"):
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok"}`))
		case strings.HasSuffix(r.URL.Path, "/webpayment"):
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"payment_url":"https://pay.orange.ml/x","pay_token":"pt-77"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func orangeTestConfig(vendorURL string) *config.Config {
	cfg := paymentTestConfig()
	cfg.Payment.Orange = config.OrangeConfig{
		BaseURL:      vendorURL,
		TokenURL:     vendorURL + "/token",
		ClientID:     "cid",
		ClientSecret: "secret",
		MerchantKey:  "mk",
		MerchantName: "Elverra",
	}
	return cfg
}

func TestInitiateOrangePersistsAttempt(t *testing.T) {
	vendor := newOrangeVendor(t)
	defer vendor.Close()

	svc, db := setupPaymentServiceTest(t, orangeTestConfig(vendor.URL))

	userID := uint(42)
	result, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{
		UserID:  &userID,
		Amount:  decimal.NewFromInt(10000),
		Phone:   "+22370000000",
		Email:   "Member@Example.com",
		Name:    "Awa Diarra",
		Purpose: "premium",
	})
	if err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	if !result.Success || result.Status != models.PaymentInitiated {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.PaymentURL != "https://pay.orange.ml/x" || result.TransactionID != "pt-77" {
		t.Fatalf("vendor fields not mapped: %+v", result)
	}
	if !strings.HasPrefix(result.Reference, "OM-") {
		t.Fatalf("generated reference missing prefix: %s", result.Reference)
	}

	var attempt models.PaymentAttempt
	if err := db.Where("reference = ?", result.Reference).First(&attempt).Error; err != nil {
		t.Fatalf("attempt not persisted: %v", err)
	}
	if attempt.Gateway != models.GatewayOrangeMoney || attempt.Status != models.PaymentInitiated {
		t.Fatalf("unexpected attempt: %+v", attempt)
	}
	if attempt.Currency != "OUV" {
		t.Fatalf("currency default not applied: %s", attempt.Currency)
	}
	if attempt.CustomerEmail != "member@example.com" {
		t.Fatalf("email not normalized: %s", attempt.CustomerEmail)
	}
	if attempt.ExpiresAt == nil {
		t.Fatalf("expiry deadline not set")
	}
}

func TestInitiateOrangeZeroAmountRejected(t *testing.T) {
	vendor := newOrangeVendor(t)
	defer vendor.Close()

	svc, _ := setupPaymentServiceTest(t, orangeTestConfig(vendor.URL))
	_, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{Amount: decimal.Zero})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestOrangeCallbackActivatesMembership(t *testing.T) {
	vendor := newOrangeVendor(t)
	defer vendor.Close()

	svc, db := setupPaymentServiceTest(t, orangeTestConfig(vendor.URL))

	user := models.User{ID: 42, Email: "member@example.com", PasswordHash: "hash", MembershipTier: models.TierBasic}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	userID := user.ID
	result, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{
		UserID:  &userID,
		Amount:  decimal.NewFromInt(10000),
		Purpose: "premium",
	})
	if err != nil {
		t.Fatalf("initiate failed: %v", err)
	}

	body := []byte(fmt.Sprintf(`{"order_id":%q,"status":"SUCCESS","txnid":"tx-1"}`, result.Reference))
	attempt, err := svc.HandleOrangeCallback(body)
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if attempt.Status != models.PaymentSuccess || attempt.CallbackAt == nil {
		t.Fatalf("callback did not settle attempt: %+v", attempt)
	}
	if attempt.ProviderTxnID != "tx-1" {
		t.Fatalf("provider txn id not updated: %s", attempt.ProviderTxnID)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if stored.MembershipTier != models.TierPremium {
		t.Fatalf("membership not activated, tier: %s", stored.MembershipTier)
	}
	if stored.MembershipExpiry == nil || stored.MembershipExpiry.Before(time.Now().AddDate(0, 11, 0)) {
		t.Fatalf("membership expiry not set a year ahead: %v", stored.MembershipExpiry)
	}

	// A vendor retry with a contradicting status leaves the settled
	// attempt untouched.
	retry := []byte(fmt.Sprintf(`{"order_id":%q,"status":"FAILED","txnid":"tx-2"}`, result.Reference))
	again, err := svc.HandleOrangeCallback(retry)
	if err != nil {
		t.Fatalf("retry callback failed: %v", err)
	}
	if again.Status != models.PaymentSuccess || again.ProviderTxnID != "tx-1" {
		t.Fatalf("settled attempt was mutated: %+v", again)
	}
}

func TestOrangeCallbackIgnoresExpiredAttempt(t *testing.T) {
	vendor := newOrangeVendor(t)
	defer vendor.Close()

	svc, db := setupPaymentServiceTest(t, orangeTestConfig(vendor.URL))

	user := models.User{ID: 7, Email: "late@example.com", PasswordHash: "hash", MembershipTier: models.TierBasic}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	userID := user.ID
	result, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{
		UserID:  &userID,
		Amount:  decimal.NewFromInt(10000),
		Purpose: "premium",
	})
	if err != nil {
		t.Fatalf("initiate failed: %v", err)
	}

	var attempt models.PaymentAttempt
	if err := db.Where("reference = ?", result.Reference).First(&attempt).Error; err != nil {
		t.Fatalf("load attempt failed: %v", err)
	}
	if err := svc.ExpireAttempt(attempt.ID); err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	// A confirmation arriving after expiry must not revive the attempt.
	body := []byte(fmt.Sprintf(`{"order_id":%q,"status":"SUCCESS","txnid":"tx-late"}`, result.Reference))
	late, err := svc.HandleOrangeCallback(body)
	if err != nil {
		t.Fatalf("late callback failed: %v", err)
	}
	if late.Status != models.PaymentExpired {
		t.Fatalf("expired attempt was revived: %s", late.Status)
	}
	if late.ProviderTxnID != "" || late.CallbackAt != nil {
		t.Fatalf("expired attempt was mutated: %+v", late)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if stored.MembershipTier != models.TierBasic {
		t.Fatalf("membership must not activate on a late callback, tier: %s", stored.MembershipTier)
	}
}

func TestOrangeCallbackUnknownReference(t *testing.T) {
	svc, _ := setupPaymentServiceTest(t, paymentTestConfig())
	_, err := svc.HandleOrangeCallback([]byte(`{"order_id":"OM-missing","status":"SUCCESS"}`))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestVerifyNormalizesGateway(t *testing.T) {
	vendor := newOrangeVendor(t)
	defer vendor.Close()

	svc, _ := setupPaymentServiceTest(t, orangeTestConfig(vendor.URL))
	result, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{Amount: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("initiate failed: %v", err)
	}

	for _, alias := range []string{"orange", "orange-money", "orange_money"} {
		attempt, err := svc.Verify(alias, result.Reference)
		if err != nil {
			t.Fatalf("verify with alias %q failed: %v", alias, err)
		}
		if attempt.Reference != result.Reference {
			t.Fatalf("wrong attempt for alias %q: %+v", alias, attempt)
		}
	}

	if _, err := svc.Verify("orange", "OM-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestExpireAttemptOnlyTouchesInitiated(t *testing.T) {
	vendor := newOrangeVendor(t)
	defer vendor.Close()

	svc, db := setupPaymentServiceTest(t, orangeTestConfig(vendor.URL))
	result, err := svc.InitiateOrangeMoney(context.Background(), InitiateInput{Amount: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	var attempt models.PaymentAttempt
	if err := db.Where("reference = ?", result.Reference).First(&attempt).Error; err != nil {
		t.Fatalf("load attempt failed: %v", err)
	}

	if err := svc.ExpireAttempt(attempt.ID); err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if err := db.First(&attempt, attempt.ID).Error; err != nil {
		t.Fatalf("reload attempt failed: %v", err)
	}
	if attempt.Status != models.PaymentExpired {
		t.Fatalf("attempt not expired: %s", attempt.Status)
	}

	// A settled attempt reports the conflict instead of flipping state.
	if err := svc.ExpireAttempt(attempt.ID); !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict, got: %v", err)
	}
	if err := svc.ExpireAttempt(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
