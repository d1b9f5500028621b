package router

import (
	"github.com/elverra/zenika-api/internal/config"
	adminhandlers "github.com/elverra/zenika-api/internal/http/handlers/admin"
	publichandlers "github.com/elverra/zenika-api/internal/http/handlers/public"
	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with the full API surface.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", publicHandler.Health)
	r.GET("/demo-payment", publicHandler.DemoPayment)
	r.GET("/payment-success", publicHandler.PaymentSuccess)
	r.GET("/payment-cancel", publicHandler.PaymentCancel)

	jwtSecret := cfg.JWT.SecretKey
	api := r.Group("/api")
	{
		api.GET("/files/logo", publicHandler.Logo)
		api.GET("/captcha/image", publicHandler.CaptchaImage)

		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", publicHandler.Login)
			auth.GET("/me", JWTAuthMiddleware(jwtSecret, c.UserRepo), publicHandler.Me)
		}

		// Guest-readable routes. A bearer token, when present, attributes
		// the write to the caller.
		guest := api.Group("", OptionalJWTMiddleware(jwtSecret, c.UserRepo))
		{
			guest.GET("/discounts/sectors", publicHandler.DiscountSectors)
			guest.GET("/discounts/featured", publicHandler.DiscountFeatured)
			guest.GET("/discounts", publicHandler.DiscountList)
			guest.POST("/merchants", publicHandler.MerchantCreate)

			guest.GET("/jobs", publicHandler.JobList)
			guest.GET("/jobs/:id", publicHandler.JobDetail)
			guest.POST("/jobs", publicHandler.JobCreate)
			guest.GET("/job-applications", publicHandler.JobApplicationList)
			guest.POST("/job-applications", publicHandler.JobApplicationCreate)
			guest.PUT("/job-applications/:id/status", publicHandler.JobApplicationUpdateStatus)

			guest.GET("/competitions", publicHandler.CompetitionList)
			guest.GET("/competitions/:id", publicHandler.CompetitionDetail)
			guest.POST("/competitions", publicHandler.CompetitionCreate)
			guest.POST("/competitions/:id/participants", publicHandler.CompetitionAddParticipant)

			guest.GET("/products", publicHandler.ProductList)
			guest.GET("/products/categories", publicHandler.ProductCategories)
			guest.GET("/products/:id", publicHandler.ProductDetail)
			guest.POST("/products", publicHandler.ProductCreate)
			guest.PUT("/products/:id", publicHandler.ProductUpdate)

			guest.GET("/loan-applications", publicHandler.LoanList)
			guest.POST("/loan-applications", publicHandler.LoanApply)
			guest.PUT("/loan-applications/:id", publicHandler.LoanUpdate)

			guest.GET("/cms-pages", publicHandler.CmsPageList)
			guest.GET("/cms-pages/:slug", publicHandler.CmsPageBySlug)
			guest.POST("/cms-pages", publicHandler.CmsPageCreate)
			guest.PUT("/cms-pages/:id", publicHandler.CmsPageUpdate)
			guest.POST("/cms-pages/:id/views", publicHandler.CmsPageCountView)

			guest.GET("/agents/:userId", publicHandler.AgentByUser)
			guest.PUT("/agents/:id/commissions", publicHandler.AgentUpdateCommissions)

			guest.GET("/users/:id", publicHandler.UserDetail)
			guest.GET("/users/:id/profile", publicHandler.UserDetail)
			guest.GET("/users/:id/applications", publicHandler.UserApplications)
			guest.GET("/users/:id/bookmarks", publicHandler.UserBookmarks)

			guest.GET("/memberships/:userId", publicHandler.MembershipDetail)
			guest.POST("/memberships", publicHandler.MembershipSet)

			guest.GET("/projects", publicHandler.ProjectList)
			guest.GET("/projects/:id", publicHandler.ProjectDetail)
			guest.POST("/projects", publicHandler.ProjectSubmit)

			guest.GET("/payment-plans", publicHandler.PaymentPlanList)
			guest.POST("/payment-plans/:id/payments", publicHandler.PaymentPlanRecordPayment)

			guest.GET("/distributors", publicHandler.DistributorList)

			guest.POST("/payments/initiate-orange-money", publicHandler.PaymentInitiateOrange)
			guest.POST("/payments/initiate-sama-money", publicHandler.PaymentInitiateSama)
			guest.POST("/payments/verify", publicHandler.PaymentVerify)
		}

		// Vendor callbacks carry no user token.
		api.POST("/payments/orange-callback", publicHandler.PaymentOrangeCallback)
		api.POST("/payments/sama-callback", publicHandler.PaymentSamaCallback)

		// Member routes require a valid token.
		member := api.Group("", JWTAuthMiddleware(jwtSecret, c.UserRepo))
		{
			member.POST("/agents", publicHandler.AgentApply)
			member.POST("/agents/:id/withdrawals", publicHandler.AgentRequestWithdrawal)
			member.POST("/competitions/:id/votes", publicHandler.CompetitionVote)
			member.PUT("/users/:id", publicHandler.UserUpdateProfile)
			member.PUT("/users/:id/profile", publicHandler.UserUpdateProfile)
			member.POST("/discounts/usage", publicHandler.DiscountRecordUsage)
			member.GET("/discounts/usage/history", publicHandler.DiscountUsageHistory)
			member.POST("/payment-plans", publicHandler.PaymentPlanCreate)
			member.POST("/distributors/register", publicHandler.DistributorRegister)
			member.GET("/distributors/me", publicHandler.DistributorMe)
		}

		admin := api.Group("/admin")
		{
			// Bootstrap endpoint stays outside the enforced group so the
			// first admin can be created on a fresh install.
			admin.POST("/operations", OptionalJWTMiddleware(jwtSecret, c.UserRepo), adminHandler.Operations)

			authorized := admin.Group("", JWTAuthMiddleware(jwtSecret, c.UserRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/agents", adminHandler.AgentList)
				authorized.PUT("/agents/:id/approve", adminHandler.AgentApprove)
				authorized.PUT("/agents/:id/reject", adminHandler.AgentReject)

				authorized.GET("/withdrawals", adminHandler.WithdrawalList)
				authorized.PUT("/withdrawals/:id/approve", adminHandler.WithdrawalApprove)
				authorized.PUT("/withdrawals/:id/reject", adminHandler.WithdrawalReject)

				authorized.PUT("/loan-applications/:id/approve", adminHandler.LoanApprove)
				authorized.PUT("/loan-applications/:id/reject", adminHandler.LoanReject)

				authorized.GET("/cms-pages", adminHandler.CmsPageList)
				authorized.GET("/users", adminHandler.UserList)
				authorized.GET("/payment-attempts", adminHandler.PaymentAttemptList)
			}
		}
	}

	return r
}
