package repository

import "time"

// UserListFilter filters the user list.
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Tier        string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AgentListFilter filters the agent list.
type AgentListFilter struct {
	Page           int
	PageSize       int
	AgentType      string
	ApprovalStatus string
	ActiveOnly     bool
}

// WithdrawalListFilter filters agent withdrawal requests.
type WithdrawalListFilter struct {
	Page     int
	PageSize int
	AgentID  uint
	Status   string
}

// JobListFilter filters job board postings.
type JobListFilter struct {
	Page       int
	PageSize   int
	Search     string
	Location   string
	JobType    string
	CompanyID  uint
	RemoteOnly bool
	ActiveOnly bool
}

// JobApplicationListFilter filters job applications.
type JobApplicationListFilter struct {
	Page        int
	PageSize    int
	JobID       uint
	ApplicantID uint
	Status      string
}

// CompetitionListFilter filters competitions.
type CompetitionListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// MerchantListFilter filters the discount catalog.
type MerchantListFilter struct {
	Page         int
	PageSize     int
	Sector       string
	Location     string
	Search       string
	FeaturedOnly bool
	ActiveOnly   bool
}

// ProductListFilter filters marketplace listings.
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	SellerID   uint
	ActiveOnly bool
}

// CmsPageListFilter filters CMS pages.
type CmsPageListFilter struct {
	Page          int
	PageSize      int
	PageType      string
	Search        string
	OnlyPublished bool
}

// LoanApplicationListFilter filters loan applications.
type LoanApplicationListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// PaymentPlanListFilter filters installment plans.
type PaymentPlanListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
	DueBy    *time.Time
}

// ProjectListFilter filters crowdfunding projects.
type ProjectListFilter struct {
	Page     int
	PageSize int
	Category string
	Status   string
}

// PaymentAttemptListFilter filters payment attempts.
type PaymentAttemptListFilter struct {
	Page        int
	PageSize    int
	Gateway     string
	Status      string
	UserID      uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DistributorListFilter filters distributor profiles.
type DistributorListFilter struct {
	Page       int
	PageSize   int
	Type       string
	ActiveOnly bool
}
