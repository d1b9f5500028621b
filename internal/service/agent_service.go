package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const referralCodeLength = 8

// AgentService manages agent profiles, approvals, commissions and
// withdrawals.
type AgentService struct {
	repo           repository.AgentRepository
	withdrawalRepo repository.AgentWithdrawalRepository
	userRepo       repository.UserRepository
	queueClient    *queue.Client
}

// NewAgentService creates an agent service.
func NewAgentService(repo repository.AgentRepository, withdrawalRepo repository.AgentWithdrawalRepository, userRepo repository.UserRepository, queueClient *queue.Client) *AgentService {
	return &AgentService{
		repo:           repo,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		queueClient:    queueClient,
	}
}

// AgentApplyInput is the agent enrollment payload.
type AgentApplyInput struct {
	UserID           uint
	AgentType        string
	ApplicationNotes string
}

// Apply enrolls a user as an agent with a fresh referral code.
func (s *AgentService) Apply(input AgentApplyInput) (*models.Agent, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	agentType := strings.TrimSpace(input.AgentType)
	if agentType == "" {
		agentType = models.AgentTypeAffiliate
	}
	if agentType != models.AgentTypeAffiliate && agentType != models.AgentTypeDistributor {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	existing, err := s.repo.GetByUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAgentExists
	}

	// Retry on the rare referral code collision.
	const maxRetry = 8
	for i := 0; i < maxRetry; i++ {
		code, genErr := generateReferralCode()
		if genErr != nil {
			return nil, genErr
		}
		agent := &models.Agent{
			UserID:           input.UserID,
			AgentType:        agentType,
			ReferralCode:     code,
			ApprovalStatus:   models.ApprovalPending,
			IsActive:         true,
			ApplicationNotes: strings.TrimSpace(input.ApplicationNotes),
		}
		if err := s.repo.Create(agent); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		return agent, nil
	}
	return nil, ErrInvalidInput
}

// GetByUserID returns a user's agent profile.
func (s *AgentService) GetByUserID(userID uint) (*models.Agent, error) {
	agent, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound
	}
	return agent, nil
}

// List returns agents matching the filter.
func (s *AgentService) List(filter repository.AgentListFilter) ([]models.Agent, int64, error) {
	return s.repo.List(filter)
}

// Approve marks a pending agent approved. Only pending agents may
// transition.
func (s *AgentService) Approve(id, adminID uint) (*models.Agent, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound
	}
	if agent.ApprovalStatus != models.ApprovalPending {
		return nil, ErrStatusConflict
	}

	now := time.Now()
	agent.ApprovalStatus = models.ApprovalApproved
	agent.ApprovedAt = &now
	agent.ApprovedBy = &adminID
	agent.RejectionReason = ""
	if err := s.repo.Update(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// Reject marks a pending agent rejected with a reason.
func (s *AgentService) Reject(id, adminID uint, reason string) (*models.Agent, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound
	}
	if agent.ApprovalStatus != models.ApprovalPending {
		return nil, ErrStatusConflict
	}

	now := time.Now()
	agent.ApprovalStatus = models.ApprovalRejected
	agent.ApprovedAt = &now
	agent.ApprovedBy = &adminID
	agent.RejectionReason = strings.TrimSpace(reason)
	if err := s.repo.Update(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// CommissionUpdateInput adjusts an agent's commission balances.
type CommissionUpdateInput struct {
	TotalDelta   decimal.Decimal
	PendingDelta decimal.Decimal
}

// UpdateCommissions applies commission deltas. Balances never go
// negative.
func (s *AgentService) UpdateCommissions(id uint, input CommissionUpdateInput) (*models.Agent, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound
	}

	total := agent.CommissionsTotal.Decimal.Add(input.TotalDelta).Round(2)
	pending := agent.CommissionsPending.Decimal.Add(input.PendingDelta).Round(2)
	if total.IsNegative() || pending.IsNegative() {
		return nil, ErrInvalidInput
	}
	agent.CommissionsTotal = models.NewMoneyFromDecimal(total)
	agent.CommissionsPending = models.NewMoneyFromDecimal(pending)
	if err := s.repo.Update(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// WithdrawalApplyInput is the payout request payload.
type WithdrawalApplyInput struct {
	Amount         decimal.Decimal
	Method         string
	AccountDetails models.JSON
}

// RequestWithdrawal files a payout request against pending commissions.
func (s *AgentService) RequestWithdrawal(agentID uint, input WithdrawalApplyInput) (*models.AgentWithdrawal, error) {
	amount := input.Amount.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	method := strings.TrimSpace(input.Method)
	if method == "" {
		return nil, ErrInvalidInput
	}

	agent, err := s.repo.GetByID(agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound
	}
	if agent.ApprovalStatus != models.ApprovalApproved || !agent.IsActive {
		return nil, ErrStatusConflict
	}
	if agent.CommissionsPending.Decimal.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	w := &models.AgentWithdrawal{
		AgentID:          agentID,
		Amount:           models.NewMoneyFromDecimal(amount),
		WithdrawalMethod: method,
		AccountDetails:   input.AccountDetails,
		Status:           models.ApprovalPending,
		RequestedAt:      time.Now(),
	}
	if err := s.withdrawalRepo.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ListWithdrawals returns payout requests matching the filter.
func (s *AgentService) ListWithdrawals(filter repository.WithdrawalListFilter) ([]models.AgentWithdrawal, int64, error) {
	return s.withdrawalRepo.List(filter)
}

// ApproveWithdrawal flips a pending payout to approved and moves the
// amount from pending to withdrawn commissions in one transaction.
func (s *AgentService) ApproveWithdrawal(id, adminID uint, txnRef, notes string) (*models.AgentWithdrawal, error) {
	var updated *models.AgentWithdrawal
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		agentTx := s.repo.WithTx(tx)
		withdrawalTx := s.withdrawalRepo.WithTx(tx)

		w, err := withdrawalTx.GetByID(id)
		if err != nil {
			return err
		}
		if w == nil {
			return ErrNotFound
		}
		if w.Status != models.ApprovalPending {
			return ErrStatusConflict
		}

		agent, err := agentTx.GetByID(w.AgentID)
		if err != nil {
			return err
		}
		if agent == nil {
			return ErrNotFound
		}
		amount := w.Amount.Decimal.Round(2)
		if agent.CommissionsPending.Decimal.LessThan(amount) {
			return ErrInsufficientFunds
		}

		agent.CommissionsPending = models.NewMoneyFromDecimal(agent.CommissionsPending.Decimal.Sub(amount))
		agent.CommissionsWithdrawn = models.NewMoneyFromDecimal(agent.CommissionsWithdrawn.Decimal.Add(amount))
		if err := agentTx.Update(agent); err != nil {
			return err
		}

		now := time.Now()
		w.Status = models.ApprovalApproved
		w.ProcessedAt = &now
		w.ProcessedBy = &adminID
		w.TransactionReference = strings.TrimSpace(txnRef)
		w.ProcessingNotes = strings.TrimSpace(notes)
		if err := withdrawalTx.Update(w); err != nil {
			return err
		}
		updated = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyWithdrawalProcessed(updated)
	return updated, nil
}

// RejectWithdrawal flips a pending payout to rejected.
func (s *AgentService) RejectWithdrawal(id, adminID uint, notes string) (*models.AgentWithdrawal, error) {
	w, err := s.withdrawalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	if w.Status != models.ApprovalPending {
		return nil, ErrStatusConflict
	}

	now := time.Now()
	w.Status = models.ApprovalRejected
	w.ProcessedAt = &now
	w.ProcessedBy = &adminID
	w.ProcessingNotes = strings.TrimSpace(notes)
	if err := s.withdrawalRepo.Update(w); err != nil {
		return nil, err
	}
	s.notifyWithdrawalProcessed(w)
	return w, nil
}

func (s *AgentService) notifyWithdrawalProcessed(w *models.AgentWithdrawal) {
	if s.queueClient == nil || w == nil {
		return
	}
	err := s.queueClient.EnqueueWithdrawalProcessed(queue.WithdrawalProcessedPayload{
		WithdrawalID: w.ID,
		Status:       w.Status,
	})
	if err != nil {
		logger.Warnw("withdrawal_processed_enqueue_failed", "withdrawal_id", w.ID, "error", err)
	}
}

func generateReferralCode() (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	var builder strings.Builder
	builder.Grow(referralCodeLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < referralCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}
	return builder.String(), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
