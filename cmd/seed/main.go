package main

import (
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/models"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	seedMerchants(stdLog.Printf)
	seedCmsPages(stdLog.Printf)
	seedJobs(stdLog.Printf)

	stdLog.Printf("Seed complete")
}

func seedMerchants(logf func(format string, args ...interface{})) {
	merchants := []models.Merchant{
		{
			BusinessName:       "Pharmacie du Fleuve",
			ContactName:        "Aminata Diallo",
			ContactEmail:       "contact@pharmaciedufleuve.ml",
			ContactPhone:       "+223 20 22 33 44",
			BusinessType:       "Pharmacy",
			DiscountPercentage: 10,
			Sector:             "Health",
			Location:           "Bamako",
			Description:        "Member discount on over-the-counter products.",
			IsFeatured:         true,
			IsActive:           true,
		},
		{
			BusinessName:       "Restaurant Le Djenne",
			ContactName:        "Moussa Keita",
			ContactEmail:       "reservations@ledjenne.ml",
			ContactPhone:       "+223 20 21 45 67",
			BusinessType:       "Restaurant",
			DiscountPercentage: 15,
			Sector:             "Food & Dining",
			Location:           "Bamako",
			Description:        "West African cuisine, member discount on dine-in.",
			IsFeatured:         true,
			IsActive:           true,
		},
		{
			BusinessName:       "Azalai Electronics",
			ContactName:        "Fatoumata Traore",
			ContactEmail:       "sales@azalai-electronics.ml",
			ContactPhone:       "+223 76 12 34 56",
			BusinessType:       "Retail",
			DiscountPercentage: 5,
			Sector:             "Electronics",
			Location:           "Sikasso",
			Description:        "Phones, accessories and solar kits.",
			IsActive:           true,
		},
		{
			BusinessName:       "Supermarche Niama",
			ContactName:        "Ibrahim Coulibaly",
			ContactEmail:       "info@niama.ml",
			ContactPhone:       "+223 66 98 76 54",
			BusinessType:       "Supermarket",
			DiscountPercentage: 8,
			Sector:             "Groceries",
			Location:           "Segou",
			Description:        "Member discount on the monthly basket.",
			IsActive:           true,
		},
		{
			BusinessName:       "Clinique Espoir",
			ContactName:        "Dr. Mariam Sangare",
			ContactEmail:       "accueil@cliniqueespoir.ml",
			ContactPhone:       "+223 20 29 10 20",
			BusinessType:       "Clinic",
			DiscountPercentage: 20,
			Sector:             "Health",
			Location:           "Bamako",
			Description:        "Consultation discount for elite members.",
			IsFeatured:         true,
			IsActive:           true,
		},
	}

	for _, merchant := range merchants {
		var existing models.Merchant
		if err := models.DB.Where("business_name = ?", merchant.BusinessName).First(&existing).Error; err != nil {
			if err := models.DB.Create(&merchant).Error; err != nil {
				logf("Failed to create merchant %s: %v", merchant.BusinessName, err)
			} else {
				logf("Created merchant: %s", merchant.BusinessName)
			}
		} else {
			logf("Merchant already exists: %s", merchant.BusinessName)
		}
	}
}

func seedCmsPages(logf func(format string, args ...interface{})) {
	now := time.Now()
	pages := []models.CmsPage{
		{
			Title:           "About Elverra Global",
			Content:         "Elverra Global is a membership platform connecting clients with partner discounts, jobs and financial services across West Africa.",
			PageType:        "about",
			Status:          models.PagePublished,
			Author:          "Elverra Team",
			MetaDescription: "Who we are and what the membership offers.",
			PublishDate:     &now,
		},
		{
			Title:       "Terms of Service",
			Content:     "Membership terms, payment conditions and the rules governing partner discounts.",
			PageType:    "legal",
			Status:      models.PagePublished,
			Author:      "Elverra Team",
			PublishDate: &now,
		},
		{
			Title:       "Privacy Policy",
			Content:     "How member data is collected, stored and shared with partner merchants.",
			PageType:    "legal",
			Status:      models.PagePublished,
			Author:      "Elverra Team",
			PublishDate: &now,
		},
	}

	for _, page := range pages {
		page.Slug = slug.Make(page.Title)
		var existing models.CmsPage
		if err := models.DB.Where("slug = ?", page.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&page).Error; err != nil {
				logf("Failed to create page %s: %v", page.Slug, err)
			} else {
				logf("Created page: %s", page.Slug)
			}
		} else {
			logf("Page already exists: %s", page.Slug)
		}
	}
}

func seedJobs(logf func(format string, args ...interface{})) {
	company := models.Company{
		Name:     "Elverra Global",
		Industry: "Membership Services",
		Size:     "51-200",
		Location: "Bamako",
		Website:  "https://elverraglobal.com",
	}
	var existingCompany models.Company
	if err := models.DB.Where("name = ?", company.Name).First(&existingCompany).Error; err != nil {
		if err := models.DB.Create(&company).Error; err != nil {
			logf("Failed to create company %s: %v", company.Name, err)
			return
		}
		logf("Created company: %s", company.Name)
	} else {
		company = existingCompany
		logf("Company already exists: %s", company.Name)
	}

	jobs := []models.Job{
		{
			CompanyID:       company.ID,
			Title:           "Field Agent Coordinator",
			Description:     "Coordinate the agent network across the Bamako region.",
			Requirements:    "2+ years field sales experience, Bambara and French.",
			SalaryMin:       models.NewMoneyFromFloat(250000),
			SalaryMax:       models.NewMoneyFromFloat(400000),
			Location:        "Bamako",
			JobType:         "full-time",
			ExperienceLevel: "mid",
			Skills:          models.StringArray{"Sales", "Team management"},
			IsActive:        true,
		},
		{
			CompanyID:       company.ID,
			Title:           "Mobile Money Support Officer",
			Description:     "Handle payment reconciliation and member support for mobile money transactions.",
			Requirements:    "Experience with Orange Money or SAMA Money back offices.",
			SalaryMin:       models.NewMoneyFromFloat(200000),
			SalaryMax:       models.NewMoneyFromFloat(300000),
			Location:        "Bamako",
			JobType:         "full-time",
			ExperienceLevel: "junior",
			Skills:          models.StringArray{"Customer support", "Reconciliation"},
			IsRemote:        false,
			IsActive:        true,
		},
	}

	for _, job := range jobs {
		var existing models.Job
		if err := models.DB.Where("company_id = ? AND title = ?", job.CompanyID, job.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&job).Error; err != nil {
				logf("Failed to create job %s: %v", job.Title, err)
			} else {
				logf("Created job: %s", job.Title)
			}
		} else {
			logf("Job already exists: %s", job.Title)
		}
	}
}
