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

// JobList lists open positions.
func (h *Handler) JobList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	companyID, _ := strconv.ParseUint(c.Query("company_id"), 10, 32)
	jobs, total, err := h.JobService.List(repository.JobListFilter{
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		JobType:    c.Query("job_type"),
		CompanyID:  uint(companyID),
		RemoteOnly: c.Query("remote") == "true",
		ActiveOnly: true,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load jobs failed", err)
		return
	}
	response.SuccessWithPage(c, jobs, handlershared.BuildPagination(page, pageSize, total))
}

// JobDetail returns one posting.
func (h *Handler) JobDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid job id", nil)
		return
	}
	job, err := h.JobService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "job not found"},
		}, response.CodeInternal, "load job failed")
		return
	}
	response.Success(c, job)
}

// JobCreateRequest is the posting payload.
type JobCreateRequest struct {
	CompanyID           uint            `json:"company_id"`
	CompanyName         string          `json:"company_name"`
	Title               string          `json:"title" binding:"required"`
	Description         string          `json:"description"`
	Requirements        string          `json:"requirements"`
	Benefits            string          `json:"benefits"`
	SalaryMin           decimal.Decimal `json:"salary_min"`
	SalaryMax           decimal.Decimal `json:"salary_max"`
	Location            string          `json:"location"`
	JobType             string          `json:"job_type"`
	ExperienceLevel     string          `json:"experience_level"`
	Skills              []string        `json:"skills"`
	IsRemote            bool            `json:"is_remote"`
	ApplicationDeadline *time.Time      `json:"application_deadline"`
}

// JobCreate posts a job.
func (h *Handler) JobCreate(c *gin.Context) {
	var req JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	job, err := h.JobService.Create(service.JobCreateInput{
		CompanyID:           req.CompanyID,
		CompanyName:         req.CompanyName,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Benefits:            req.Benefits,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Location:            req.Location,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		Skills:              req.Skills,
		IsRemote:            req.IsRemote,
		ApplicationDeadline: req.ApplicationDeadline,
		PostedBy:            optionalUserID(c),
	})
	if err != nil {
		respondWithMappedError(c, err, commonListErrorRules, response.CodeInternal, "create job failed")
		return
	}
	response.Success(c, job)
}

// JobApplicationRequest is an application payload.
type JobApplicationRequest struct {
	JobID           uint            `json:"job_id" binding:"required"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	ResumeURL       string          `json:"resume_url"`
	CoverLetter     string          `json:"cover_letter"`
	Skills          []string        `json:"skills"`
	ExperienceYears int             `json:"experience_years"`
	Education       string          `json:"education"`
	WorkExperience  string          `json:"work_experience"`
	PortfolioURL    string          `json:"portfolio_url"`
	ExpectedSalary  decimal.Decimal `json:"expected_salary"`
	AvailableFrom   *time.Time      `json:"available_from"`
}

// JobApplicationCreate files an application.
func (h *Handler) JobApplicationCreate(c *gin.Context) {
	var req JobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	app, err := h.JobService.Apply(service.ApplicationInput{
		JobID:           req.JobID,
		ApplicantID:     optionalUserID(c),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		ResumeURL:       req.ResumeURL,
		CoverLetter:     req.CoverLetter,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Education:       req.Education,
		WorkExperience:  req.WorkExperience,
		PortfolioURL:    req.PortfolioURL,
		ExpectedSalary:  req.ExpectedSalary,
		AvailableFrom:   req.AvailableFrom,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "name and email are required"},
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "job not found"},
		}, response.CodeInternal, "apply failed")
		return
	}
	response.Success(c, app)
}

// JobApplicationList lists applications, optionally for one job.
func (h *Handler) JobApplicationList(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	jobID, _ := strconv.ParseUint(c.Query("job_id"), 10, 32)
	apps, total, err := h.JobService.ListApplications(repository.JobApplicationListFilter{
		JobID:    uint(jobID),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "load applications failed", err)
		return
	}
	response.SuccessWithPage(c, apps, handlershared.BuildPagination(page, pageSize, total))
}

// JobApplicationStatusRequest updates application review status.
type JobApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// JobApplicationUpdateStatus moves an application through review.
func (h *Handler) JobApplicationUpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid application id", nil)
		return
	}
	var req JobApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	app, err := h.JobService.UpdateApplicationStatus(uint(id), req.Status)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid status"},
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "application not found"},
		}, response.CodeInternal, "update status failed")
		return
	}
	response.Success(c, app)
}
