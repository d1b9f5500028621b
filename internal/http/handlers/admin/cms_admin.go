package admin

import (
	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// CmsPageList lists pages in every status, drafts included.
func (h *Handler) CmsPageList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	pages, total, err := h.CmsService.ListAll(repository.CmsPageListFilter{
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
