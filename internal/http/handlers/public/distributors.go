package public

import (
	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DistributorList lists wholesale partners.
func (h *Handler) DistributorList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	distributors, total, err := h.DistributorService.List(repository.DistributorListFilter{
		Type:       c.Query("type"),
		ActiveOnly: true,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load distributors failed", err)
		return
	}
	response.SuccessWithPage(c, distributors, handlershared.BuildPagination(page, pageSize, total))
}

// DistributorRegisterRequest enrolls a wholesale partner.
type DistributorRegisterRequest struct {
	BusinessName        string          `json:"business_name" binding:"required"`
	RegistrationNumber  string          `json:"registration_number"`
	DistributorType     string          `json:"distributor_type"`
	ContactPhone        string          `json:"contact_phone"`
	ContactEmail        string          `json:"contact_email"`
	TerritoryCoverage   []string        `json:"territory_coverage"`
	ProductsDistributed []string        `json:"products_distributed"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
}

// DistributorRegister creates the caller's distributor profile.
func (h *Handler) DistributorRegister(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req DistributorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	distributor, err := h.DistributorService.Register(service.DistributorRegisterInput{
		UserID:              userID,
		BusinessName:        req.BusinessName,
		RegistrationNumber:  req.RegistrationNumber,
		DistributorType:     req.DistributorType,
		ContactPhone:        req.ContactPhone,
		ContactEmail:        req.ContactEmail,
		TerritoryCoverage:   req.TerritoryCoverage,
		ProductsDistributed: req.ProductsDistributed,
		CommissionRate:      req.CommissionRate,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrAgentExists, code: response.CodeBadRequest, msg: "distributor profile already exists"},
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "user not found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid distributor profile"},
		}, response.CodeInternal, "register distributor failed")
		return
	}
	response.Success(c, distributor)
}

// DistributorMe returns the caller's distributor profile.
func (h *Handler) DistributorMe(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	distributor, err := h.DistributorService.GetByUserID(userID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "distributor not found"},
		}, response.CodeInternal, "load distributor failed")
		return
	}
	response.Success(c, distributor)
}
