package public

import (
	"strconv"
	"time"

	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CmsPageList lists published pages.
func (h *Handler) CmsPageList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	pages, total, err := h.CmsService.ListPublished(repository.CmsPageListFilter{
		PageType: c.Query("page_type"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load pages failed", err)
		return
	}
	response.SuccessWithPage(c, pages, handlershared.BuildPagination(page, pageSize, total))
}

// CmsPageBySlug returns one published page.
func (h *Handler) CmsPageBySlug(c *gin.Context) {
	page, err := h.CmsService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, cmsErrorRules, response.CodeInternal, "load page failed")
		return
	}
	response.Success(c, page)
}

// CmsPageRequest is the page payload.
type CmsPageRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	PageType        string     `json:"page_type"`
	Status          string     `json:"status"`
	Author          string     `json:"author"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`
	FeaturedImage   string     `json:"featured_image"`
	IsFeatured      bool       `json:"is_featured"`
	PublishDate     *time.Time `json:"publish_date"`
}

func (r CmsPageRequest) toInput() service.PageInput {
	return service.PageInput{
		Title:           r.Title,
		Slug:            r.Slug,
		Content:         r.Content,
		PageType:        r.PageType,
		Status:          r.Status,
		Author:          r.Author,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,
		FeaturedImage:   r.FeaturedImage,
		IsFeatured:      r.IsFeatured,
		PublishDate:     r.PublishDate,
	}
}

// CmsPageCreate adds a page.
func (h *Handler) CmsPageCreate(c *gin.Context) {
	var req CmsPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	page, err := h.CmsService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, cmsErrorRules, response.CodeInternal, "create page failed")
		return
	}
	response.Success(c, page)
}

// CmsPageUpdate edits a page.
func (h *Handler) CmsPageUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid page id", nil)
		return
	}
	var req CmsPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	page, err := h.CmsService.Update(uint(id), req.toInput(), req.Author)
	if err != nil {
		respondWithMappedError(c, err, cmsErrorRules, response.CodeInternal, "update page failed")
		return
	}
	response.Success(c, page)
}

// CmsPageCountView records a page view.
func (h *Handler) CmsPageCountView(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid page id", nil)
		return
	}
	if err := h.CmsService.CountView(uint(id)); err != nil {
		respondWithMappedError(c, err, cmsErrorRules, response.CodeInternal, "count view failed")
		return
	}
	response.Success(c, gin.H{"counted": true})
}
