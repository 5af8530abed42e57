package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oubasys/portfolio/config"
	"github.com/oubasys/portfolio/internal/api/handlers"
	"github.com/oubasys/portfolio/internal/api/routes"
	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/logger"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/providers/llm"
	mongorepo "github.com/oubasys/portfolio/internal/repositories/mongo"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/storage"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	log.Info("PostgreSQL connected")

	if err := config.PostgresDB.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Experience{},
		&models.Project{},
		&models.Review{},
		&models.KnowledgeItem{},
		&models.AssistantSetting{},
	); err != nil {
		log.Fatalf("PostgreSQL migration error: %v", err)
	}

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	log.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	// Init Redis. Without it the server still runs, on an in-process cache.
	var store cache.Cache
	if err := config.InitRedis(); err != nil {
		log.WithError(err).Warn("Redis unavailable, using in-memory cache")
		store = cache.NewMemoryCache()
	} else {
		log.Info("Redis connected")
		store = cache.NewRedisCache(config.RedisClient)
	}

	ctx := context.Background()

	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		uploader = up
	} else {
		log.Warn("GCS_BUCKET not set, profile file uploads disabled")
	}

	var provider llm.Provider = llm.Disabled{}
	if project := os.Getenv("VERTEX_PROJECT_ID"); project != "" {
		p, err := llm.NewVertexGemini(ctx, project, os.Getenv("VERTEX_LOCATION"), os.Getenv("VERTEX_MODEL"))
		if err != nil {
			log.Fatalf("Vertex init error: %v", err)
		}
		defer p.Close()
		provider = p
	} else {
		log.Warn("VERTEX_PROJECT_ID not set, chat assistant disabled")
	}

	// Repositories
	profiles := pgrepo.NewProfileRepo(config.PostgresDB)
	skills := pgrepo.NewSkillRepo(config.PostgresDB)
	experiences := pgrepo.NewExperienceRepo(config.PostgresDB)
	projects := pgrepo.NewProjectRepo(config.PostgresDB)
	reviews := pgrepo.NewReviewRepo(config.PostgresDB)
	knowledge := pgrepo.NewKnowledgeRepo(config.PostgresDB)
	settings := pgrepo.NewSettingRepo(config.PostgresDB)
	sessions := mongorepo.NewChatSessionRepo(config.MongoDatabase())

	// Services
	authSvc := services.NewAuthService(jwtSecret, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD_HASH"), store)
	profileSvc := services.NewProfileService(profiles, store)
	skillSvc := services.NewSkillService(skills, store)
	experienceSvc := services.NewExperienceService(experiences, store)
	projectSvc := services.NewProjectService(projects, store)
	reviewSvc := services.NewReviewService(reviews, store)
	knowledgeSvc := services.NewKnowledgeService(knowledge)
	settingsSvc := services.NewSettingsService(settings)
	chatSvc := services.NewChatService(sessions, knowledge, settings, provider, log)

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Log:       log,
		JWTSecret: jwtSecret,
		Auth:      authSvc,

		AuthH:      handlers.NewAuthHandler(authSvc),
		Profile:    handlers.NewProfileHandler(profileSvc, uploader),
		Skills:     handlers.NewSkillHandler(skillSvc),
		Experience: handlers.NewExperienceHandler(experienceSvc),
		Projects:   handlers.NewProjectHandler(projectSvc),
		Reviews:    handlers.NewReviewHandler(reviewSvc),
		Knowledge:  handlers.NewKnowledgeHandler(knowledgeSvc),
		Settings:   handlers.NewSettingsHandler(settingsSvc),
		Chat:       handlers.NewChatHandler(chatSvc),
		AISessions: handlers.NewAISessionHandler(chatSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
