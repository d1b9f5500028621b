package public

import (
	"strconv"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LoanList lists loan applications, optionally for one user.
func (h *Handler) LoanList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
	apps, total, err := h.LoanService.List(repository.LoanApplicationListFilter{
		UserID:   uint(userID),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load loan applications failed", err)
		return
	}
	response.SuccessWithPage(c, apps, handlershared.BuildPagination(page, pageSize, total))
}

// LoanApplyRequest files a micro-lending application.
type LoanApplyRequest struct {
	LoanType           string          `json:"loan_type" binding:"required"`
	RequestedAmount    decimal.Decimal `json:"requested_amount"`
	MonthlyIncome      decimal.Decimal `json:"monthly_income"`
	EmploymentStatus   string          `json:"employment_status"`
	EmploymentDuration string          `json:"employment_duration"`
	Purpose            string          `json:"purpose"`
	Collateral         string          `json:"collateral"`
}

// LoanApply files an application.
func (h *Handler) LoanApply(c *gin.Context) {
	var req LoanApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	app, err := h.LoanService.Apply(service.LoanApplyInput{
		UserID:             optionalUserID(c),
		LoanType:           req.LoanType,
		RequestedAmount:    req.RequestedAmount,
		MonthlyIncome:      req.MonthlyIncome,
		EmploymentStatus:   req.EmploymentStatus,
		EmploymentDuration: req.EmploymentDuration,
		Purpose:            req.Purpose,
		Collateral:         req.Collateral,
	})
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "loan application failed")
		return
	}
	response.Success(c, app)
}

// LoanUpdateRequest carries a loan status decision.
type LoanUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// LoanUpdate applies a status decision to a pending application.
func (h *Handler) LoanUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid loan id", nil)
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req LoanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	app, err := h.LoanService.UpdateStatus(uint(id), userID, req.Status, req.Notes)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrStatusConflict, code: response.CodeBadRequest, msg: "application is not pending"},
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "application not found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid status"},
		}, response.CodeInternal, "update loan failed")
		return
	}
	response.Success(c, app)
}
