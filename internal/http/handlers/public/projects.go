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

// ProjectList lists crowdfunding projects.
func (h *Handler) ProjectList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	projects, total, err := h.ProjectService.List(repository.ProjectListFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load projects failed", err)
		return
	}
	response.SuccessWithPage(c, projects, handlershared.BuildPagination(page, pageSize, total))
}

// ProjectDetail returns one project.
func (h *Handler) ProjectDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid project id", nil)
		return
	}
	project, err := h.ProjectService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "project not found"},
		}, response.CodeInternal, "load project failed")
		return
	}
	response.Success(c, project)
}

// ProjectSubmitRequest files a project proposal.
type ProjectSubmitRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	Location       string          `json:"location"`
	SubmitterName  string          `json:"submitter_name"`
	Beneficiaries  string          `json:"beneficiaries"`
	ExpectedImpact string          `json:"expected_impact"`
	ProjectPlan    string          `json:"project_plan"`
}

// ProjectSubmit files a proposal for review.
func (h *Handler) ProjectSubmit(c *gin.Context) {
	var req ProjectSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	project, err := h.ProjectService.Submit(service.ProjectSubmitInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		TargetAmount:   req.TargetAmount,
		Location:       req.Location,
		SubmitterID:    optionalUserID(c),
		SubmitterName:  req.SubmitterName,
		Beneficiaries:  req.Beneficiaries,
		ExpectedImpact: req.ExpectedImpact,
		ProjectPlan:    req.ProjectPlan,
	})
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "submit project failed")
		return
	}
	response.Success(c, project)
}
