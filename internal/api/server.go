package api

import (
	"github.com/campusgig/gig_service/config"
	"github.com/campusgig/gig_service/infra/queue"
	"github.com/campusgig/gig_service/internal/api/rest/handlers"
	"github.com/campusgig/gig_service/internal/api/rest/middleware"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/helper"
	"github.com/campusgig/gig_service/internal/interfaces"
	"github.com/campusgig/gig_service/internal/repository"
	"github.com/campusgig/gig_service/internal/services"
	"github.com/campusgig/gig_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: cfg.BaseURL != "*",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Info("database connected")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Job{},
		&domain.Application{},
		&domain.Portfolio{},
		&domain.SavedJob{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Info("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)

	var up interfaces.Uploader
	cld, err := cloudinary.New(cfg.CloudinaryUrl)
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	if cld != nil {
		up = cloudinary.NewCloudinaryUploader(cld)
	} else {
		log.Warn("CLOUDINARY_URL not set, file uploads disabled")
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	savedRepo := repository.NewSavedJobRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)

	// ---------- Services ----------
	userSvc := &services.UserService{
		Repo:          userRepo,
		PortfolioRepo: portfolioRepo,
		Auth:          authHelper,
		Producer:      kafkaProducer,
		Uploader:      up,
		Config:        cfg,
	}
	jobSvc := &services.JobService{
		Repo:      jobRepo,
		SavedRepo: savedRepo,
		Uploader:  up,
		Producer:  kafkaProducer,
		Config:    cfg,
	}
	appSvc := &services.ApplicationService{
		Repo:     appRepo,
		JobRepo:  jobRepo,
		Uploader: up,
		Producer: kafkaProducer,
	}
	portfolioSvc := &services.PortfolioService{
		Repo:     portfolioRepo,
		Uploader: up,
	}

	// ---------- Routes ----------
	authMw := middleware.AuthMiddleware(authHelper, userRepo)
	api := app.Group("/api/v1")

	handlers.NewUserHandler(userSvc).SetupRoutes(api, authMw)
	handlers.NewJobHandler(jobSvc).SetupRoutes(api, authMw)
	handlers.NewApplicationHandler(appSvc).SetupRoutes(api, authMw)
	handlers.NewPortfolioHandler(portfolioSvc).SetupRoutes(api, authMw)
	handlers.NewAdminHandler(userSvc, jobSvc, appSvc).SetupRoutes(api, authMw)
	handlers.NewUploadHandler(up).SetupRoutes(api, authMw)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Info("listening on ", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}
