package provider

import (
	"github.com/elverra/zenika-api/internal/authz"
	"github.com/elverra/zenika-api/internal/cache"
	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/models"
	"github.com/elverra/zenika-api/internal/queue"
	"github.com/elverra/zenika-api/internal/repository"
	"github.com/elverra/zenika-api/internal/service"
)

// Container wires repositories and services for handlers and workers.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo           repository.UserRepository
	AgentRepo          repository.AgentRepository
	AgentWithdrawRepo  repository.AgentWithdrawalRepository
	JobRepo            repository.JobRepository
	JobApplicationRepo repository.JobApplicationRepository
	CompetitionRepo    repository.CompetitionRepository
	MerchantRepo       repository.MerchantRepository
	ProductRepo        repository.ProductRepository
	CmsPageRepo        repository.CmsPageRepository
	LoanRepo           repository.LoanApplicationRepository
	PaymentPlanRepo    repository.PaymentPlanRepository
	DistributorRepo    repository.DistributorRepository
	ProjectRepo        repository.ProjectRepository
	PaymentAttemptRepo repository.PaymentAttemptRepository

	// Services
	AuthzService       *authz.Service
	AuthService        *service.AuthService
	CaptchaService     *service.CaptchaService
	UserService        *service.UserService
	AgentService       *service.AgentService
	JobService         *service.JobService
	CompetitionService *service.CompetitionService
	DiscountService    *service.DiscountService
	ProductService     *service.ProductService
	CmsService         *service.CmsService
	LoanService        *service.LoanService
	PaymentPlanService *service.PaymentPlanService
	DistributorService *service.DistributorService
	ProjectService     *service.ProjectService
	PaymentService     *service.PaymentService
}

// NewContainer builds the dependency container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	if queueClient == nil {
		queueClient = queue.NewDisabledClient()
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.AgentRepo = repository.NewAgentRepository(db)
	c.AgentWithdrawRepo = repository.NewAgentWithdrawalRepository(db)
	c.JobRepo = repository.NewJobRepository(db)
	c.JobApplicationRepo = repository.NewJobApplicationRepository(db)
	c.CompetitionRepo = repository.NewCompetitionRepository(db)
	c.MerchantRepo = repository.NewMerchantRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CmsPageRepo = repository.NewCmsPageRepository(db)
	c.LoanRepo = repository.NewLoanApplicationRepository(db)
	c.PaymentPlanRepo = repository.NewPaymentPlanRepository(db)
	c.DistributorRepo = repository.NewDistributorRepository(db)
	c.ProjectRepo = repository.NewProjectRepository(db)
	c.PaymentAttemptRepo = repository.NewPaymentAttemptRepository(db)
}

// mirrorRoleHolders pushes stored role grants into the enforcer so
// users granted roles outside the admin API, the seeded admin
// included, pass RBAC checks.
func (c *Container) mirrorRoleHolders() {
	ids, err := c.UserRepo.RoleHolderIDs()
	if err != nil {
		logger.Errorw("provider_mirror_roles_failed", "error", err)
		return
	}
	for _, id := range ids {
		if err := c.AuthzService.SyncUserRoles(c.UserRepo, id); err != nil {
			logger.Errorw("provider_mirror_roles_failed", "user_id", id, "error", err)
		}
	}
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
	} else {
		if err := authzService.BootstrapBuiltinRoles(); err != nil {
			logger.Errorw("provider_bootstrap_roles_failed", "error", err)
		}
		c.AuthzService = authzService
		c.mirrorRoleHolders()
	}

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UserService = service.NewUserService(c.UserRepo, c.JobApplicationRepo)
	c.AgentService = service.NewAgentService(c.AgentRepo, c.AgentWithdrawRepo, c.UserRepo, c.QueueClient)
	c.JobService = service.NewJobService(c.JobRepo, c.JobApplicationRepo)
	c.CompetitionService = service.NewCompetitionService(c.CompetitionRepo)
	c.DiscountService = service.NewDiscountService(c.MerchantRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CmsService = service.NewCmsService(c.CmsPageRepo)
	c.LoanService = service.NewLoanService(c.LoanRepo)
	c.PaymentPlanService = service.NewPaymentPlanService(c.PaymentPlanRepo)
	c.DistributorService = service.NewDistributorService(c.DistributorRepo, c.UserRepo)
	c.ProjectService = service.NewProjectService(c.ProjectRepo)
	c.PaymentService = service.NewPaymentService(c.Config, c.PaymentAttemptRepo, c.UserRepo, c.QueueClient)
}
