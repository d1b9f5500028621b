package public

import (
	"context"
	"strconv"
	"time"

	"github.com/elverra/zenika-api/internal/cache"
	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	sectorsCacheKey = "discounts:sectors"
	sectorsCacheTTL = 10 * time.Minute
)

// DiscountSectors lists the distinct merchant sectors.
func (h *Handler) DiscountSectors(c *gin.Context) {
	var cached []string
	if hit, err := cache.GetJSON(c.Request.Context(), sectorsCacheKey, &cached); err == nil && hit {
		response.Success(c, gin.H{"sectors": cached})
		return
	}

	sectors, err := h.DiscountService.Sectors()
	if err != nil {
		respondError(c, response.CodeInternal, "load sectors failed", err)
		return
	}
	if err := cache.SetJSON(c.Request.Context(), sectorsCacheKey, sectors, sectorsCacheTTL); err != nil {
		handlershared.RequestLog(c).Warnw("cache_sectors_failed", "error", err)
	}
	response.Success(c, gin.H{"sectors": sectors})
}

// DiscountFeatured lists featured partner merchants.
func (h *Handler) DiscountFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	merchants, err := h.DiscountService.Featured(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "load featured merchants failed", err)
		return
	}
	response.Success(c, gin.H{"merchants": merchants})
}

// DiscountList lists active partner merchants with filters.
func (h *Handler) DiscountList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	merchants, total, err := h.DiscountService.List(repository.MerchantListFilter{
		Sector:   c.Query("sector"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load merchants failed", err)
		return
	}
	response.SuccessWithPage(c, merchants, handlershared.BuildPagination(page, pageSize, total))
}

// DiscountUsageRequest records a discount redemption.
type DiscountUsageRequest struct {
	MerchantID  uint            `json:"merchant_id" binding:"required"`
	AmountSaved decimal.Decimal `json:"amount_saved"`
}

// DiscountRecordUsage saves a member's redemption at a merchant.
func (h *Handler) DiscountRecordUsage(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req DiscountUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	usage, err := h.DiscountService.RecordUsage(userID, req.MerchantID, req.AmountSaved)
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "record usage failed")
		return
	}
	response.Success(c, usage)
}

// DiscountUsageHistory lists the member's redemptions.
func (h *Handler) DiscountUsageHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.QueryPagination(c)
	usage, total, err := h.DiscountService.ListUsage(userID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "load usage failed", err)
		return
	}
	response.SuccessWithPage(c, usage, handlershared.BuildPagination(page, pageSize, total))
}

// MerchantCreateRequest onboards a partner business.
type MerchantCreateRequest struct {
	BusinessName       string `json:"business_name" binding:"required"`
	ContactName        string `json:"contact_name"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	BusinessType       string `json:"business_type"`
	DiscountPercentage int    `json:"discount_percentage"`
	Sector             string `json:"sector"`
	Location           string `json:"location"`
	LogoURL            string `json:"logo_url"`
	Description        string `json:"description"`
	IsFeatured         bool   `json:"is_featured"`
}

// MerchantCreate registers a partner merchant.
func (h *Handler) MerchantCreate(c *gin.Context) {
	var req MerchantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	merchant, err := h.DiscountService.CreateMerchant(service.MerchantCreateInput{
		BusinessName:       req.BusinessName,
		ContactName:        req.ContactName,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		BusinessType:       req.BusinessType,
		DiscountPercentage: req.DiscountPercentage,
		Sector:             req.Sector,
		Location:           req.Location,
		LogoURL:            req.LogoURL,
		Description:        req.Description,
		IsFeatured:         req.IsFeatured,
	})
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "create merchant failed")
		return
	}
	// A new merchant may introduce a sector.
	_ = cache.Del(context.Background(), sectorsCacheKey)
	response.Success(c, merchant)
}
