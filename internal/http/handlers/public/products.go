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

// ProductList lists marketplace listings.
func (h *Handler) ProductList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	sellerID, _ := strconv.ParseUint(c.Query("seller_id"), 10, 32)
	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SellerID: uint(sellerID),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load products failed", err)
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// ProductDetail returns one listing and counts the view.
func (h *Handler) ProductDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	product, err := h.ProductService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "product not found"},
		}, response.CodeInternal, "load product failed")
		return
	}
	response.Success(c, product)
}

// ProductCategories lists distinct listing categories.
func (h *Handler) ProductCategories(c *gin.Context) {
	categories, err := h.ProductService.Categories()
	if err != nil {
		respondError(c, response.CodeInternal, "load categories failed", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// ProductRequest is a listing payload.
type ProductRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Condition    string          `json:"condition"`
	Location     string          `json:"location"`
	Images       []string        `json:"images"`
	ContactPhone string          `json:"contact_phone"`
	ContactEmail string          `json:"contact_email"`
	IsFeatured   bool            `json:"is_featured"`
}

func (r ProductRequest) toInput(sellerID *uint) service.ProductInput {
	return service.ProductInput{
		SellerID:     sellerID,
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		Condition:    r.Condition,
		Location:     r.Location,
		Images:       r.Images,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		IsFeatured:   r.IsFeatured,
	}
}

// ProductCreate posts a listing.
func (h *Handler) ProductCreate(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput(optionalUserID(c)))
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "create product failed")
		return
	}
	response.Success(c, product)
}

// ProductUpdate edits a listing.
func (h *Handler) ProductUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Update(uint(id), req.toInput(nil))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "product not found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid product"},
		}, response.CodeInternal, "update product failed")
		return
	}
	response.Success(c, product)
}
