package public

import (
	"strconv"
	"time"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentPlanList lists installment plans, optionally for one user.
func (h *Handler) PaymentPlanList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
	plans, total, err := h.PaymentPlanService.List(repository.PaymentPlanListFilter{
		UserID:   uint(userID),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load payment plans failed", err)
		return
	}
	response.SuccessWithPage(c, plans, handlershared.BuildPagination(page, pageSize, total))
}

// PaymentPlanCreateRequest opens an installment plan.
type PaymentPlanCreateRequest struct {
	ProductName      string          `json:"product_name" binding:"required"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DownPayment      decimal.Decimal `json:"down_payment"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	NumberOfPayments int             `json:"number_of_payments"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	StartDate        *time.Time      `json:"start_date"`
}

// PaymentPlanCreate opens a plan for the caller.
func (h *Handler) PaymentPlanCreate(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req PaymentPlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	plan, err := h.PaymentPlanService.Create(service.PlanCreateInput{
		UserID:           userID,
		ProductName:      req.ProductName,
		TotalAmount:      req.TotalAmount,
		DownPayment:      req.DownPayment,
		MonthlyPayment:   req.MonthlyPayment,
		NumberOfPayments: req.NumberOfPayments,
		InterestRate:     req.InterestRate,
		StartDate:        req.StartDate,
	})
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "create payment plan failed")
		return
	}
	response.Success(c, plan)
}

// PlanPaymentRequest records an installment.
type PlanPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaymentPlanRecordPayment applies an installment to an active plan.
func (h *Handler) PaymentPlanRecordPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid plan id", nil)
		return
	}
	var req PlanPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	plan, err := h.PaymentPlanService.RecordPayment(uint(id), req.Amount)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrStatusConflict, code: response.CodeBadRequest, msg: "plan is not active"},
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "plan not found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid payment amount"},
		}, response.CodeInternal, "record payment failed")
		return
	}
	response.Success(c, plan)
}
