package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/provider"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.PaymentAttempt{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Payment.ExpireMinutes = 15

	ctn := &provider.Container{
		Config:      cfg,
		QueueClient: queue.NewDisabledClient(),
	}
	ctn.UserRepo = repository.NewUserRepository(db)
	ctn.PaymentAttemptRepo = repository.NewPaymentAttemptRepository(db)
	ctn.PaymentService = service.NewPaymentService(cfg, ctn.PaymentAttemptRepo, ctn.UserRepo, ctn.QueueClient)

	return NewConsumer(ctn), db
}

func createAttempt(t *testing.T, db *gorm.DB, status string) *models.PaymentAttempt {
	t.Helper()
	deadline := time.Now().Add(-time.Minute)
	attempt := &models.PaymentAttempt{
		Gateway:   models.GatewayOrangeMoney,
		Reference: fmt.Sprintf("OM-%d", time.Now().UnixNano()),
		Amount:    models.NewMoneyFromFloat(5000),
		Currency:  "OUV",
		Status:    status,
		ExpiresAt: &deadline,
	}
	if err := db.Create(attempt).Error; err != nil {
		t.Fatalf("create attempt failed: %v", err)
	}
	return attempt
}

func TestHandlePaymentExpireFlipsInitiated(t *testing.T) {
	consumer, db := setupConsumerTest(t)
	attempt := createAttempt(t, db, models.PaymentInitiated)

	task, err := queue.NewPaymentExpireTask(queue.PaymentExpirePayload{AttemptID: attempt.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handlePaymentExpire(context.Background(), task); err != nil {
		t.Fatalf("handle expire failed: %v", err)
	}

	if err := db.First(attempt, attempt.ID).Error; err != nil {
		t.Fatalf("reload attempt failed: %v", err)
	}
	if attempt.Status != models.PaymentExpired {
		t.Fatalf("attempt should be expired, got: %s", attempt.Status)
	}
}

func TestHandlePaymentExpireSkipsSettled(t *testing.T) {
	consumer, db := setupConsumerTest(t)
	attempt := createAttempt(t, db, models.PaymentSuccess)

	task, err := queue.NewPaymentExpireTask(queue.PaymentExpirePayload{AttemptID: attempt.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	// Settled attempts are skipped without retrying the task.
	if err := consumer.handlePaymentExpire(context.Background(), task); err != nil {
		t.Fatalf("settled attempt should be skipped: %v", err)
	}

	if err := db.First(attempt, attempt.ID).Error; err != nil {
		t.Fatalf("reload attempt failed: %v", err)
	}
	if attempt.Status != models.PaymentSuccess {
		t.Fatalf("settled attempt must keep its status, got: %s", attempt.Status)
	}
}

func TestHandlePaymentExpireUnknownAttempt(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task, err := queue.NewPaymentExpireTask(queue.PaymentExpirePayload{AttemptID: 9999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handlePaymentExpire(context.Background(), task); err != nil {
		t.Fatalf("missing attempt should be skipped: %v", err)
	}
}

func TestHandlePaymentExpireBadPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskPaymentExpire, []byte("{"))
	if err := consumer.handlePaymentExpire(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should error")
	}
}
