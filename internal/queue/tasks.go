package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names.
const (
	TaskPaymentConfirmed    = "payment:confirmed"
	TaskPaymentExpire       = "payment:expire"
	TaskWithdrawalProcessed = "withdrawal:processed"
)

// PaymentConfirmedPayload is dispatched after a successful vendor
// callback.
type PaymentConfirmedPayload struct {
	AttemptID uint   `json:"attempt_id"`
	Gateway   string `json:"gateway"`
	Reference string `json:"reference"`
}

// PaymentExpirePayload is the delayed expiry check for an initiated
// attempt.
type PaymentExpirePayload struct {
	AttemptID uint `json:"attempt_id"`
}

// WithdrawalProcessedPayload notifies the agent of a payout decision.
type WithdrawalProcessedPayload struct {
	WithdrawalID uint   `json:"withdrawal_id"`
	Status       string `json:"status"`
}

// NewPaymentConfirmedTask builds a payment-confirmed task.
func NewPaymentConfirmedTask(payload PaymentConfirmedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentConfirmed, body), nil
}

// NewPaymentExpireTask builds a payment expiry task.
func NewPaymentExpireTask(payload PaymentExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentExpire, body), nil
}

// NewWithdrawalProcessedTask builds a withdrawal notification task.
func NewWithdrawalProcessedTask(payload WithdrawalProcessedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWithdrawalProcessed, body), nil
}
