package admin

import (
	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// UserList lists member accounts.
func (h *Handler) UserList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Keyword:  c.Query("keyword"),
		Tier:     c.Query("tier"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load users failed", err)
		return
	}
	response.SuccessWithPage(c, users, handlershared.BuildPagination(page, pageSize, total))
}
