package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/Ganapati12/Edulists-sub001/internal/handler/http"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/config"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/database"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/external_services"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/jwt"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/logger"
	passwordservice "github.com/Ganapati12/Edulists-sub001/internal/infrastructure/password_service"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/repository/mongodb"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/uuidgen"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/validator"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewUserRepository(db.Collection("users"))
	instituteRepo := mongodb.NewInstituteRepository(db.Collection("institutes"))
	adminRepo := mongodb.NewAdminRepository(db.Collection("admins"))
	courseRepo := mongodb.NewCourseRepository(db.Collection("courses"))
	enquiryRepo := mongodb.NewEnquiryRepository(db.Collection("enquiries"))
	reviewRepo := mongodb.NewReviewRepository(db.Collection("reviews"))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.AccessTokenExpiry)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	mailService := external_services.NewEmailService(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom,
	)

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, instituteRepo, adminRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	courseUsecase := usecase.NewCourseUsecase(courseRepo, instituteRepo, uuidGenerator, appLogger)
	enquiryUsecase := usecase.NewEnquiryUsecase(enquiryRepo, instituteRepo, mailService, uuidGenerator, appLogger, cfg)
	reviewUsecase := usecase.NewReviewUsecase(reviewRepo, instituteRepo, userRepo, uuidGenerator, appLogger)
	dashboardUsecase := usecase.NewDashboardUsecase(userRepo, instituteRepo, courseRepo, enquiryRepo, reviewRepo)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(authUsecase, courseUsecase, enquiryUsecase, reviewUsecase, dashboardUsecase, jwtService)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
