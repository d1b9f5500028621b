package admin

import (
	"strconv"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// AgentList lists agent profiles, filterable by approval status.
func (h *Handler) AgentList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	agents, total, err := h.AgentService.List(repository.AgentListFilter{
		AgentType:      c.Query("agent_type"),
		ApprovalStatus: c.Query("status"),
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load agents failed", err)
		return
	}
	response.SuccessWithPage(c, agents, handlershared.BuildPagination(page, pageSize, total))
}

// AgentApprove approves a pending agent application.
func (h *Handler) AgentApprove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid agent id", nil)
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	agent, err := h.AgentService.Approve(uint(id), adminID)
	if err != nil {
		respondDecisionError(c, err, "agent not found")
		return
	}
	response.Success(c, agent)
}

// AgentRejectRequest carries the rejection reason.
type AgentRejectRequest struct {
	Reason string `json:"reason"`
}

// AgentReject rejects a pending agent application.
func (h *Handler) AgentReject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid agent id", nil)
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req AgentRejectRequest
	// body is optional, a missing reason is allowed
	_ = c.ShouldBindJSON(&req)
	agent, err := h.AgentService.Reject(uint(id), adminID, req.Reason)
	if err != nil {
		respondDecisionError(c, err, "agent not found")
		return
	}
	response.Success(c, agent)
}
