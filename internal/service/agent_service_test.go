package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupAgentServiceTest(t *testing.T) (*AgentService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:agent_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Agent{},
		&models.AgentWithdrawal{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	agentRepo := repository.NewAgentRepository(db)
	withdrawalRepo := repository.NewAgentWithdrawalRepository(db)
	userRepo := repository.NewUserRepository(db)
	return NewAgentService(agentRepo, withdrawalRepo, userRepo, queue.NewDisabledClient()), db
}

func createAgentTestUser(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	user := models.User{
		ID:           id,
		Email:        fmt.Sprintf("agent_user_%d@example.com", id),
		PasswordHash: "hash",
		FullName:     "Agent User",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
}

func TestAgentApplyAndApprove(t *testing.T) {
	svc, db := setupAgentServiceTest(t)
	createAgentTestUser(t, db, 1)

	agent, err := svc.Apply(AgentApplyInput{UserID: 1, AgentType: models.AgentTypeAffiliate})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if agent.ApprovalStatus != models.ApprovalPending {
		t.Fatalf("new agent should be pending, got: %s", agent.ApprovalStatus)
	}
	if len(agent.ReferralCode) != referralCodeLength {
		t.Fatalf("unexpected referral code: %q", agent.ReferralCode)
	}

	if _, err := svc.Apply(AgentApplyInput{UserID: 1}); !errors.Is(err, ErrAgentExists) {
		t.Fatalf("expected ErrAgentExists on second apply, got: %v", err)
	}

	approved, err := svc.Approve(agent.ID, 99)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.ApprovalStatus != models.ApprovalApproved || approved.ApprovedAt == nil {
		t.Fatalf("approve did not update status: %+v", approved)
	}

	if _, err := svc.Approve(agent.ID, 99); !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict on re-approve, got: %v", err)
	}
	if _, err := svc.Reject(agent.ID, 99, "late"); !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict on reject after approve, got: %v", err)
	}

	pending, total, err := svc.List(repository.AgentListFilter{ApprovalStatus: models.ApprovalPending})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(pending) != 0 {
		t.Fatalf("approved agent still listed as pending: %d", total)
	}
}

func TestAgentRejectKeepsReason(t *testing.T) {
	svc, db := setupAgentServiceTest(t)
	createAgentTestUser(t, db, 2)

	agent, err := svc.Apply(AgentApplyInput{UserID: 2, AgentType: models.AgentTypeDistributor})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	rejected, err := svc.Reject(agent.ID, 7, "  incomplete documents  ")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.ApprovalStatus != models.ApprovalRejected {
		t.Fatalf("unexpected status: %s", rejected.ApprovalStatus)
	}
	if rejected.RejectionReason != "incomplete documents" {
		t.Fatalf("reason not trimmed: %q", rejected.RejectionReason)
	}
}

func TestWithdrawalApprovalMovesBalances(t *testing.T) {
	svc, db := setupAgentServiceTest(t)
	createAgentTestUser(t, db, 3)

	agent, err := svc.Apply(AgentApplyInput{UserID: 3})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := svc.Approve(agent.ID, 1); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := svc.UpdateCommissions(agent.ID, CommissionUpdateInput{
		TotalDelta:   decimal.NewFromInt(100),
		PendingDelta: decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("update commissions failed: %v", err)
	}

	if _, err := svc.RequestWithdrawal(agent.ID, WithdrawalApplyInput{
		Amount: decimal.NewFromInt(150),
		Method: "orange_money",
	}); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got: %v", err)
	}

	w, err := svc.RequestWithdrawal(agent.ID, WithdrawalApplyInput{
		Amount: decimal.NewFromInt(60),
		Method: "orange_money",
	})
	if err != nil {
		t.Fatalf("request withdrawal failed: %v", err)
	}
	if w.Status != models.ApprovalPending {
		t.Fatalf("new withdrawal should be pending, got: %s", w.Status)
	}

	approved, err := svc.ApproveWithdrawal(w.ID, 1, "TXN-1", "paid out")
	if err != nil {
		t.Fatalf("approve withdrawal failed: %v", err)
	}
	if approved.Status != models.ApprovalApproved || approved.TransactionReference != "TXN-1" {
		t.Fatalf("unexpected withdrawal state: %+v", approved)
	}

	var stored models.Agent
	if err := db.First(&stored, agent.ID).Error; err != nil {
		t.Fatalf("load agent failed: %v", err)
	}
	if !stored.CommissionsPending.Decimal.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("pending not debited, got: %s", stored.CommissionsPending.String())
	}
	if !stored.CommissionsWithdrawn.Decimal.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("withdrawn not credited, got: %s", stored.CommissionsWithdrawn.String())
	}

	if _, err := svc.ApproveWithdrawal(w.ID, 1, "TXN-2", ""); !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict on re-approve, got: %v", err)
	}
}

func TestWithdrawalRejectLeavesBalances(t *testing.T) {
	svc, db := setupAgentServiceTest(t)
	createAgentTestUser(t, db, 4)

	agent, err := svc.Apply(AgentApplyInput{UserID: 4})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := svc.Approve(agent.ID, 1); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := svc.UpdateCommissions(agent.ID, CommissionUpdateInput{
		TotalDelta:   decimal.NewFromInt(50),
		PendingDelta: decimal.NewFromInt(50),
	}); err != nil {
		t.Fatalf("update commissions failed: %v", err)
	}

	w, err := svc.RequestWithdrawal(agent.ID, WithdrawalApplyInput{
		Amount: decimal.NewFromInt(20),
		Method: "bank",
	})
	if err != nil {
		t.Fatalf("request withdrawal failed: %v", err)
	}
	rejected, err := svc.RejectWithdrawal(w.ID, 1, "account mismatch")
	if err != nil {
		t.Fatalf("reject withdrawal failed: %v", err)
	}
	if rejected.Status != models.ApprovalRejected {
		t.Fatalf("unexpected status: %s", rejected.Status)
	}

	var stored models.Agent
	if err := db.First(&stored, agent.ID).Error; err != nil {
		t.Fatalf("load agent failed: %v", err)
	}
	if !stored.CommissionsPending.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("pending should be untouched, got: %s", stored.CommissionsPending.String())
	}
}
