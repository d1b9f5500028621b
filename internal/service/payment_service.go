package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/payment/orange"
	"github.com/elverra/zenika-api/internal/payment/sama"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService drives mobile-money payment initiation, vendor
// callbacks and verification.
type PaymentService struct {
	cfg         *config.Config
	attemptRepo repository.PaymentAttemptRepository
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewPaymentService creates a payment service.
func NewPaymentService(cfg *config.Config, attemptRepo repository.PaymentAttemptRepository, userRepo repository.UserRepository, queueClient *queue.Client) *PaymentService {
	return &PaymentService{
		cfg:         cfg,
		attemptRepo: attemptRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// InitiateInput is the payment initiation payload.
type InitiateInput struct {
	UserID    *uint
	Amount    decimal.Decimal
	Currency  string
	Phone     string
	Email     string
	Name      string
	Reference string
	Purpose   string
}

// InitiateResult mirrors the initiation response contract.
type InitiateResult struct {
	Success       bool   `json:"success"`
	PaymentURL    string `json:"payment_url"`
	Reference     string `json:"reference"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// InitiateOrangeMoney creates an Orange Money WebPayment intent.
// Credential validation happens before any outbound call.
func (s *PaymentService) InitiateOrangeMoney(ctx context.Context, input InitiateInput) (*InitiateResult, error) {
	cfg := s.orangeConfig()
	if err := orange.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	reference := resolveReference(input.Reference, "OM")
	attempt, err := s.createAttempt(models.GatewayOrangeMoney, reference, input)
	if err != nil {
		return nil, err
	}

	base := s.cfg.Server.BaseURL
	result, err := orange.CreatePayment(ctx, cfg, orange.CreateInput{
		Reference: reference,
		Amount:    input.Amount.Round(2).StringFixed(2),
		Currency:  attempt.Currency,
		ReturnURL: base + "/payment-success",
		CancelURL: base + "/payment-cancel",
		NotifyURL: base + "/api/payments/orange-callback",
	})
	if err != nil {
		s.markAttemptFailed(attempt, err)
		return nil, err
	}

	attempt.PaymentURL = result.PaymentURL
	attempt.ProviderTxnID = result.PaymentToken
	attempt.ProviderPayload = result.Raw
	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, err
	}
	s.scheduleExpiry(attempt)

	return &InitiateResult{
		Success:       true,
		PaymentURL:    result.PaymentURL,
		Reference:     reference,
		Amount:        attempt.Amount.String(),
		Status:        models.PaymentInitiated,
		TransactionID: result.PaymentToken,
	}, nil
}

// InitiateSamaMoney creates a SAMA Money payment intent.
func (s *PaymentService) InitiateSamaMoney(ctx context.Context, input InitiateInput) (*InitiateResult, error) {
	cfg := s.samaConfig()
	if err := sama.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	reference := resolveReference(input.Reference, "SM")
	attempt, err := s.createAttempt(models.GatewaySamaMoney, reference, input)
	if err != nil {
		return nil, err
	}

	base := s.cfg.Server.BaseURL
	result, err := sama.CreatePayment(ctx, cfg, sama.CreateInput{
		Reference:     reference,
		Amount:        input.Amount.Round(2).StringFixed(2),
		Currency:      attempt.Currency,
		CustomerPhone: input.Phone,
		CustomerName:  input.Name,
		CustomerEmail: input.Email,
		CallbackURL:   base + "/api/payments/sama-callback",
		ReturnURL:     base + "/payment-success",
	})
	if err != nil {
		s.markAttemptFailed(attempt, err)
		return nil, err
	}

	attempt.PaymentURL = result.PaymentURL
	attempt.ProviderTxnID = result.TransactionID
	attempt.ProviderPayload = result.Raw
	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, err
	}
	s.scheduleExpiry(attempt)

	return &InitiateResult{
		Success:       true,
		PaymentURL:    result.PaymentURL,
		Reference:     reference,
		Amount:        attempt.Amount.String(),
		Status:        models.PaymentInitiated,
		TransactionID: result.TransactionID,
	}, nil
}

// HandleOrangeCallback applies an Orange Money notification.
func (s *PaymentService) HandleOrangeCallback(body []byte) (*models.PaymentAttempt, error) {
	data, err := orange.ParseCallback(body)
	if err != nil {
		return nil, err
	}
	status := models.PaymentFailed
	if data.IsSuccess() {
		status = models.PaymentSuccess
	}
	return s.applyCallback(models.GatewayOrangeMoney, data.OrderID, status, data.TxnID, body)
}

// HandleSamaCallback applies a SAMA Money notification.
func (s *PaymentService) HandleSamaCallback(body []byte) (*models.PaymentAttempt, error) {
	data, err := sama.ParseCallback(body)
	if err != nil {
		return nil, err
	}
	status := models.PaymentFailed
	if data.IsSuccess() {
		status = models.PaymentSuccess
	}
	return s.applyCallback(models.GatewaySamaMoney, data.Reference, status, data.TransactionID, body)
}

// Verify returns the recorded state of an attempt.
func (s *PaymentService) Verify(gateway, reference string) (*models.PaymentAttempt, error) {
	attempt, err := s.attemptRepo.GetByReference(normalizeGateway(gateway), strings.TrimSpace(reference))
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, ErrNotFound
	}
	return attempt, nil
}

// ExpireAttempt marks a still-initiated attempt expired. Used by the
// delayed queue task.
func (s *PaymentService) ExpireAttempt(id uint) error {
	attempt, err := s.attemptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if attempt == nil {
		return ErrNotFound
	}
	if attempt.Status != models.PaymentInitiated {
		return ErrStatusConflict
	}
	attempt.Status = models.PaymentExpired
	return s.attemptRepo.Update(attempt)
}

// ExpireStale sweeps initiated attempts past their deadline. Used by
// the periodic scheduler.
func (s *PaymentService) ExpireStale(now time.Time) (int64, error) {
	return s.attemptRepo.ExpireStale(now)
}

func (s *PaymentService) createAttempt(gateway, reference string, input InitiateInput) (*models.PaymentAttempt, error) {
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "OUV"
	}
	expireMinutes := s.cfg.Payment.ExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = 15
	}
	expiresAt := time.Now().Add(time.Duration(expireMinutes) * time.Minute)

	attempt := &models.PaymentAttempt{
		Gateway:       gateway,
		Reference:     reference,
		UserID:        input.UserID,
		Amount:        models.NewMoneyFromDecimal(input.Amount),
		Currency:      currency,
		CustomerPhone: strings.TrimSpace(input.Phone),
		CustomerEmail: strings.ToLower(strings.TrimSpace(input.Email)),
		CustomerName:  strings.TrimSpace(input.Name),
		Purpose:       strings.TrimSpace(input.Purpose),
		Status:        models.PaymentInitiated,
		ExpiresAt:     &expiresAt,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *PaymentService) markAttemptFailed(attempt *models.PaymentAttempt, cause error) {
	attempt.Status = models.PaymentFailed
	attempt.ProviderPayload = models.JSON{"error": cause.Error()}
	if err := s.attemptRepo.Update(attempt); err != nil {
		logger.Warnw("payment_attempt_fail_update_failed", "attempt_id", attempt.ID, "error", err)
	}
}

func (s *PaymentService) scheduleExpiry(attempt *models.PaymentAttempt) {
	if attempt.ExpiresAt == nil {
		return
	}
	delay := time.Until(*attempt.ExpiresAt)
	if err := s.queueClient.EnqueuePaymentExpire(queue.PaymentExpirePayload{AttemptID: attempt.ID}, delay); err != nil {
		logger.Warnw("payment_expire_enqueue_failed", "attempt_id", attempt.ID, "error", err)
	}
}

func (s *PaymentService) applyCallback(gateway, reference, status, txnID string, body []byte) (*models.PaymentAttempt, error) {
	attempt, err := s.attemptRepo.GetByReference(gateway, strings.TrimSpace(reference))
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, ErrNotFound
	}
	// Only initiated attempts accept callbacks. Settled and expired
	// attempts are returned untouched so vendor retries and late
	// confirmations stay no-ops.
	if attempt.Status != models.PaymentInitiated {
		return attempt, nil
	}

	now := time.Now()
	attempt.Status = status
	attempt.CallbackAt = &now
	if txnID != "" {
		attempt.ProviderTxnID = txnID
	}
	var payload models.JSON
	if err := payload.Scan(body); err == nil && len(payload) > 0 {
		attempt.ProviderPayload = payload
	}
	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, err
	}

	if status == models.PaymentSuccess {
		s.activateMembership(attempt)
		if err := s.queueClient.EnqueuePaymentConfirmed(queue.PaymentConfirmedPayload{
			AttemptID: attempt.ID,
			Gateway:   gateway,
			Reference: attempt.Reference,
		}); err != nil {
			logger.Warnw("payment_confirmed_enqueue_failed", "attempt_id", attempt.ID, "error", err)
		}
	}
	return attempt, nil
}

// activateMembership upgrades the paying user when the attempt bought
// a membership tier.
func (s *PaymentService) activateMembership(attempt *models.PaymentAttempt) {
	if attempt.UserID == nil {
		return
	}
	tier := strings.ToLower(strings.TrimSpace(attempt.Purpose))
	switch tier {
	case models.TierBasic, models.TierPremium, models.TierElite:
	default:
		return
	}

	user, err := s.userRepo.GetByID(*attempt.UserID)
	if err != nil || user == nil {
		logger.Warnw("membership_activation_user_lookup_failed", "user_id", *attempt.UserID, "error", err)
		return
	}
	expiry := time.Now().AddDate(1, 0, 0)
	user.MembershipTier = tier
	user.MembershipExpiry = &expiry
	if err := s.userRepo.Update(user); err != nil {
		logger.Warnw("membership_activation_failed", "user_id", user.ID, "error", err)
	}
}

func (s *PaymentService) orangeConfig() *orange.Config {
	cfg := &orange.Config{
		BaseURL:      s.cfg.Payment.Orange.BaseURL,
		TokenURL:     s.cfg.Payment.Orange.TokenURL,
		ClientID:     s.cfg.Payment.Orange.ClientID,
		ClientSecret: s.cfg.Payment.Orange.ClientSecret,
		MerchantKey:  s.cfg.Payment.Orange.MerchantKey,
		MerchantName: s.cfg.Payment.Orange.MerchantName,
	}
	cfg.Normalize()
	return cfg
}

func (s *PaymentService) samaConfig() *sama.Config {
	cfg := &sama.Config{
		BaseURL:        s.cfg.Payment.Sama.BaseURL,
		MerchantCode:   s.cfg.Payment.Sama.MerchantCode,
		MerchantName:   s.cfg.Payment.Sama.MerchantName,
		PublicKey:      s.cfg.Payment.Sama.PublicKey,
		TransactionKey: s.cfg.Payment.Sama.TransactionKey,
		UserID:         s.cfg.Payment.Sama.UserID,
	}
	cfg.Normalize()
	return cfg
}

func resolveReference(raw, prefix string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		return trimmed
	}
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

func normalizeGateway(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "orange", "orange_money", "orange-money":
		return models.GatewayOrangeMoney
	case "sama", "sama_money", "sama-money":
		return models.GatewaySamaMoney
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}
