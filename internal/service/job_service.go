package service

import (
	"strings"
	"time"

	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/repository"

	"github.com/shopspring/decimal"
)

// JobService manages job postings and applications.
type JobService struct {
	jobRepo repository.JobRepository
	appRepo repository.JobApplicationRepository
}

// NewJobService creates a job service.
func NewJobService(jobRepo repository.JobRepository, appRepo repository.JobApplicationRepository) *JobService {
	return &JobService{jobRepo: jobRepo, appRepo: appRepo}
}

// List returns jobs matching the filter.
func (s *JobService) List(filter repository.JobListFilter) ([]models.Job, int64, error) {
	return s.jobRepo.List(filter)
}

// GetByID returns a job.
func (s *JobService) GetByID(id uint) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

// JobCreateInput is the posting payload. CompanyName is used when
// CompanyID is absent, creating the company on first use.
type JobCreateInput struct {
	CompanyID           uint
	CompanyName         string
	Title               string
	Description         string
	Requirements        string
	Benefits            string
	SalaryMin           decimal.Decimal
	SalaryMax           decimal.Decimal
	Location            string
	JobType             string
	ExperienceLevel     string
	Skills              []string
	IsRemote            bool
	ApplicationDeadline *time.Time
	PostedBy            *uint
}

// Create posts a job.
func (s *JobService) Create(input JobCreateInput) (*models.Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	companyID := input.CompanyID
	if companyID == 0 {
		name := strings.TrimSpace(input.CompanyName)
		if name == "" {
			return nil, ErrInvalidInput
		}
		company, err := s.jobRepo.GetCompanyByName(name)
		if err != nil {
			return nil, err
		}
		if company == nil {
			company = &models.Company{Name: name, Location: strings.TrimSpace(input.Location)}
			if err := s.jobRepo.CreateCompany(company); err != nil {
				return nil, err
			}
		}
		companyID = company.ID
	} else {
		company, err := s.jobRepo.GetCompanyByID(companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrNotFound
		}
	}

	job := &models.Job{
		CompanyID:           companyID,
		Title:               title,
		Description:         input.Description,
		Requirements:        input.Requirements,
		Benefits:            input.Benefits,
		SalaryMin:           models.NewMoneyFromDecimal(input.SalaryMin),
		SalaryMax:           models.NewMoneyFromDecimal(input.SalaryMax),
		Location:            strings.TrimSpace(input.Location),
		JobType:             strings.TrimSpace(input.JobType),
		ExperienceLevel:     strings.TrimSpace(input.ExperienceLevel),
		Skills:              input.Skills,
		IsRemote:            input.IsRemote,
		IsActive:            true,
		ApplicationDeadline: input.ApplicationDeadline,
		PostedBy:            input.PostedBy,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return s.GetByID(job.ID)
}

// ApplicationInput is the candidate application payload.
type ApplicationInput struct {
	JobID           uint
	ApplicantID     *uint
	FullName        string
	Email           string
	Phone           string
	ResumeURL       string
	CoverLetter     string
	Skills          []string
	ExperienceYears int
	Education       string
	WorkExperience  string
	PortfolioURL    string
	ExpectedSalary  decimal.Decimal
	AvailableFrom   *time.Time
}

// Apply files an application. Job, name and email are required.
func (s *JobService) Apply(input ApplicationInput) (*models.JobApplication, error) {
	if input.JobID == 0 || strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, ErrInvalidInput
	}

	job, err := s.jobRepo.GetByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	app := &models.JobApplication{
		JobID:           input.JobID,
		ApplicantID:     input.ApplicantID,
		FullName:        strings.TrimSpace(input.FullName),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:           strings.TrimSpace(input.Phone),
		ResumeURL:       strings.TrimSpace(input.ResumeURL),
		CoverLetter:     input.CoverLetter,
		Skills:          input.Skills,
		ExperienceYears: input.ExperienceYears,
		Education:       input.Education,
		WorkExperience:  input.WorkExperience,
		PortfolioURL:    strings.TrimSpace(input.PortfolioURL),
		ExpectedSalary:  models.NewMoneyFromDecimal(input.ExpectedSalary),
		AvailableFrom:   input.AvailableFrom,
		Status:          models.ApplicationPending,
		AppliedAt:       time.Now(),
	}
	if err := s.appRepo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplications returns applications matching the filter.
func (s *JobService) ListApplications(filter repository.JobApplicationListFilter) ([]models.JobApplication, int64, error) {
	return s.appRepo.List(filter)
}

// UpdateApplicationStatus moves an application through review.
func (s *JobService) UpdateApplicationStatus(id uint, status string) (*models.JobApplication, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case models.ApplicationPending, models.ApplicationReviewed, models.ApplicationAccepted, models.ApplicationRejected:
	default:
		return nil, ErrInvalidInput
	}

	app, err := s.appRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}

	app.Status = status
	if err := s.appRepo.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}
