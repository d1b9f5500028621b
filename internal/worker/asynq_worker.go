package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/provider"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles async payment and payout tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer bound to the container.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPaymentConfirmed, c.handlePaymentConfirmed)
	mux.HandleFunc(queue.TaskPaymentExpire, c.handlePaymentExpire)
	mux.HandleFunc(queue.TaskWithdrawalProcessed, c.handleWithdrawalProcessed)
}

func (c *Consumer) handlePaymentConfirmed(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_payment_confirmed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.PaymentConfirmedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_payment_confirmed_unmarshal_failed", "error", err)
		return err
	}
	if payload.AttemptID == 0 {
		logger.Debugw("worker_payment_confirmed_skip_invalid_payload", "attempt_id", payload.AttemptID)
		return nil
	}
	attempt, err := c.PaymentAttemptRepo.GetByID(payload.AttemptID)
	if err != nil {
		logger.Warnw("worker_payment_confirmed_fetch_failed", "attempt_id", payload.AttemptID, "error", err)
		return err
	}
	if attempt == nil {
		logger.Debugw("worker_payment_confirmed_skip_not_found", "attempt_id", payload.AttemptID)
		return nil
	}
	if attempt.Status != models.PaymentSuccess {
		logger.Debugw("worker_payment_confirmed_skip_not_settled",
			"attempt_id", attempt.ID,
			"status", attempt.Status,
		)
		return nil
	}
	fields := []interface{}{
		"attempt_id", attempt.ID,
		"gateway", attempt.Gateway,
		"reference", attempt.Reference,
		"purpose", attempt.Purpose,
		"amount", attempt.Amount,
	}
	if attempt.UserID != nil {
		if user, err := c.UserRepo.GetByID(*attempt.UserID); err == nil && user != nil {
			fields = append(fields,
				"user_id", user.ID,
				"membership_tier", user.MembershipTier,
			)
		}
	}
	// Receipt and notification dispatch hangs off this log line until an
	// outbound channel exists.
	logger.Infow("worker_payment_confirmed", fields...)
	return nil
}

func (c *Consumer) handlePaymentExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_payment_expire_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.PaymentExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_payment_expire_unmarshal_failed", "error", err)
		return err
	}
	if payload.AttemptID == 0 {
		logger.Debugw("worker_payment_expire_skip_invalid_payload", "attempt_id", payload.AttemptID)
		return nil
	}
	if err := c.PaymentService.ExpireAttempt(payload.AttemptID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			logger.Debugw("worker_payment_expire_skip_not_found", "attempt_id", payload.AttemptID)
			return nil
		case errors.Is(err, service.ErrStatusConflict):
			logger.Debugw("worker_payment_expire_skip_settled", "attempt_id", payload.AttemptID)
			return nil
		default:
			logger.Warnw("worker_payment_expire_failed", "attempt_id", payload.AttemptID, "error", err)
			return err
		}
	}
	return nil
}

func (c *Consumer) handleWithdrawalProcessed(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_withdrawal_processed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.WithdrawalProcessedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_withdrawal_processed_unmarshal_failed", "error", err)
		return err
	}
	if payload.WithdrawalID == 0 {
		logger.Debugw("worker_withdrawal_processed_skip_invalid_payload", "withdrawal_id", payload.WithdrawalID)
		return nil
	}
	withdrawal, err := c.AgentWithdrawRepo.GetByID(payload.WithdrawalID)
	if err != nil {
		logger.Warnw("worker_withdrawal_processed_fetch_failed", "withdrawal_id", payload.WithdrawalID, "error", err)
		return err
	}
	if withdrawal == nil {
		logger.Debugw("worker_withdrawal_processed_skip_not_found", "withdrawal_id", payload.WithdrawalID)
		return nil
	}
	logger.Infow("worker_withdrawal_processed",
		"withdrawal_id", withdrawal.ID,
		"agent_id", withdrawal.AgentID,
		"status", withdrawal.Status,
		"amount", withdrawal.Amount,
	)
	return nil
}
