package public

import (
	"strconv"

	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AgentApplyRequest enrolls the caller into the referral program.
type AgentApplyRequest struct {
	AgentType        string `json:"agent_type" binding:"required"`
	ApplicationNotes string `json:"application_notes"`
}

// AgentApply creates an agent profile with a fresh referral code.
func (h *Handler) AgentApply(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req AgentApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	agent, err := h.AgentService.Apply(service.AgentApplyInput{
		UserID:           userID,
		AgentType:        req.AgentType,
		ApplicationNotes: req.ApplicationNotes,
	})
	if err != nil {
		respondWithMappedError(c, err, agentApplyErrorRules, response.CodeInternal, "agent application failed")
		return
	}
	response.Success(c, agent)
}

// AgentByUser returns the agent profile of a user.
func (h *Handler) AgentByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	agent, err := h.AgentService.GetByUserID(uint(userID))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "agent not found"},
		}, response.CodeInternal, "load agent failed")
		return
	}
	response.Success(c, agent)
}

// CommissionUpdateRequest moves commission balances.
type CommissionUpdateRequest struct {
	TotalDelta   decimal.Decimal `json:"total_delta"`
	PendingDelta decimal.Decimal `json:"pending_delta"`
}

// AgentUpdateCommissions credits or debits an agent's commissions.
func (h *Handler) AgentUpdateCommissions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid agent id", nil)
		return
	}
	var req CommissionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	agent, err := h.AgentService.UpdateCommissions(uint(id), service.CommissionUpdateInput{
		TotalDelta:   req.TotalDelta,
		PendingDelta: req.PendingDelta,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "agent not found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "commission balance cannot go negative"},
		}, response.CodeInternal, "update commissions failed")
		return
	}
	response.Success(c, agent)
}

// WithdrawalRequest is an agent payout request.
type WithdrawalRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"withdrawal_method" binding:"required"`
	AccountDetails models.JSON     `json:"account_details"`
}

// AgentRequestWithdrawal files a payout request against pending
// commissions.
func (h *Handler) AgentRequestWithdrawal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid agent id", nil)
		return
	}
	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	withdrawal, err := h.AgentService.RequestWithdrawal(uint(id), service.WithdrawalApplyInput{
		Amount:         req.Amount,
		Method:         req.Method,
		AccountDetails: req.AccountDetails,
	})
	if err != nil {
		respondWithMappedError(c, err, withdrawalErrorRules, response.CodeInternal, "withdrawal request failed")
		return
	}
	response.Success(c, withdrawal)
}
