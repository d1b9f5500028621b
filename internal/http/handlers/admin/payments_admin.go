package admin

import (
	handlershared "github.com/elverra/zenika-api/internal/http/handlers/shared"
	"github.com/elverra/zenika-api/internal/http/response"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// PaymentAttemptList lists payment attempts across gateways.
func (h *Handler) PaymentAttemptList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	attempts, total, err := h.PaymentAttemptRepo.List(repository.PaymentAttemptListFilter{
		Gateway:  c.Query("gateway"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load payment attempts failed", err)
		return
	}
	response.SuccessWithPage(c, attempts, handlershared.BuildPagination(page, pageSize, total))
}
