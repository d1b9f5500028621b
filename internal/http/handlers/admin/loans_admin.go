package admin

import (
	"strconv"

	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LoanApproveRequest carries the approved terms.
type LoanApproveRequest struct {
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	TermMonths     int             `json:"term_months"`
	Notes          string          `json:"notes"`
}

// LoanApprove grants a pending application with its terms.
func (h *Handler) LoanApprove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid loan id", nil)
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req LoanApproveRequest
	_ = c.ShouldBindJSON(&req)

	app, err := h.LoanService.Approve(uint(id), adminID, service.LoanDecisionInput{
		ApprovedAmount: req.ApprovedAmount,
		InterestRate:   req.InterestRate,
		TermMonths:     req.TermMonths,
		Notes:          req.Notes,
	})
	if err != nil {
		respondDecisionError(c, err, "loan application not found")
		return
	}
	response.Success(c, app)
}

// LoanRejectRequest carries the rejection notes.
type LoanRejectRequest struct {
	Notes string `json:"notes"`
}

// LoanReject declines a pending application.
func (h *Handler) LoanReject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid loan id", nil)
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req LoanRejectRequest
	_ = c.ShouldBindJSON(&req)

	app, err := h.LoanService.Reject(uint(id), adminID, req.Notes)
	if err != nil {
		respondDecisionError(c, err, "loan application not found")
		return
	}
	response.Success(c, app)
}
