package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/config"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/handler"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/middleware"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/service"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store/gormstore"
	"github.com/Kunal-1408/deployed-portfolio-sub001/pkg/database"
	"github.com/Kunal-1408/deployed-portfolio-sub001/pkg/storage"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Website{},
		&models.Brand{},
		&models.Design{},
		&models.Social{},
		&models.Query{},
		&models.Settings{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdmin()

	// 4. Stores and Services
	repo := gormstore.New(database.DB)
	sessionTTL := time.Duration(config.AppConfig.Server.SessionTTLHours) * time.Hour
	contentService := service.NewContentService(repo, service.HighlightRepeat)
	queryService := service.NewQueryService(repo)
	authService := service.NewAuthService(repo, config.AppConfig.Server.SessionSecret, sessionTTL)

	uploader, err := buildUploader()
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	entityHandler := &handler.EntityHandler{Content: contentService}
	queryHandler := &handler.QueryHandler{Queries: queryService}
	authHandler := &handler.AuthHandler{Auth: authService, CookieMaxAge: int(sessionTTL.Seconds())}
	settingsHandler := &handler.SettingsHandler{Settings: repo}
	uploadHandler := &handler.UploadHandler{Store: uploader}

	validator := middleware.JWTValidator(config.AppConfig.Server.SessionSecret)

	// 5. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Admin pages are session-only; everything else passes through.
	r.Use(middleware.PageGate("/admin", "/login", validator))

	// 6. Setup Routes
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	publicRoutes := r.Group("/api/v1/public")
	{
		publicRoutes.GET("/entities", entityHandler.ListEntities)
		publicRoutes.GET("/entities/:id", entityHandler.GetEntity)
		publicRoutes.POST("/queries", queryHandler.CreateQuery)
		publicRoutes.GET("/settings", settingsHandler.GetSettings)
	}

	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.APIGate(validator))
	{
		adminRoutes.GET("/entities", entityHandler.ListEntities)
		adminRoutes.GET("/entities/:id", entityHandler.GetEntity)
		adminRoutes.POST("/entities", entityHandler.UpsertEntity)
		adminRoutes.GET("/queries", queryHandler.ListQueries)
		adminRoutes.DELETE("/queries", queryHandler.DeleteQuery)
		adminRoutes.GET("/settings", settingsHandler.GetSettings)
		adminRoutes.PUT("/settings", settingsHandler.UpdateSettings)
		adminRoutes.POST("/uploads", uploadHandler.Upload)
	}

	if config.AppConfig.Storage.Driver == "local" {
		r.Static("/uploads", config.AppConfig.Storage.UploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func buildUploader() (storage.Uploader, error) {
	cfg := config.AppConfig.Storage
	if cfg.Driver == "s3" {
		return storage.NewS3Store(context.Background(), cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey)
	}
	baseURL := config.AppConfig.Server.BaseURL + "/uploads"
	return storage.NewLocalStore(cfg.UploadDir, baseURL)
}
