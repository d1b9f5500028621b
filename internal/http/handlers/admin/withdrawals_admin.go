package admin

import (
	"strconv"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// WithdrawalList lists agent payout requests.
func (h *Handler) WithdrawalList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	agentID, _ := strconv.ParseUint(c.Query("agent_id"), 10, 32)
	withdrawals, total, err := h.AgentService.ListWithdrawals(repository.WithdrawalListFilter{
		AgentID:  uint(agentID),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load withdrawals failed", err)
		return
	}
	response.SuccessWithPage(c, withdrawals, handlershared.BuildPagination(page, pageSize, total))
}

// WithdrawalDecisionRequest carries payout processing details.
type WithdrawalDecisionRequest struct {
	TransactionReference string `json:"transaction_reference"`
	Notes                string `json:"notes"`
}

// WithdrawalApprove pays out a pending request. The commission balances
// move with the status flip in one transaction.
func (h *Handler) WithdrawalApprove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid withdrawal id", nil)
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req WithdrawalDecisionRequest
	_ = c.ShouldBindJSON(&req)

	withdrawal, err := h.AgentService.ApproveWithdrawal(uint(id), adminID, req.TransactionReference, req.Notes)
	if err != nil {
		respondDecisionError(c, err, "withdrawal not found")
		return
	}
	response.Success(c, withdrawal)
}

// WithdrawalReject declines a pending request.
func (h *Handler) WithdrawalReject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid withdrawal id", nil)
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req WithdrawalDecisionRequest
	_ = c.ShouldBindJSON(&req)

	withdrawal, err := h.AgentService.RejectWithdrawal(uint(id), adminID, req.Notes)
	if err != nil {
		respondDecisionError(c, err, "withdrawal not found")
		return
	}
	response.Success(c, withdrawal)
}
