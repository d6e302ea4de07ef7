package main

import (
	"log"

	"github.com/atahmasb/trivia-api/internal/config"
	"github.com/atahmasb/trivia-api/internal/database"
	"github.com/atahmasb/trivia-api/internal/handlers"
	"github.com/atahmasb/trivia-api/internal/middleware"
	"github.com/atahmasb/trivia-api/internal/services"

	_ "github.com/atahmasb/trivia-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     Question bank and quiz game API
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment")
	}
	cfg := config.MustLoad()
	gin.SetMode(cfg.Server.Mode)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var authService *services.AuthService
	if cfg.Auth.Secret != "" {
		authService = services.NewAuthService(cfg.Auth.Secret, cfg.Auth.TTL)
	} else {
		log.Println("auth.secret not set, question create and delete are open")
	}

	r := newRouter(handlers.NewDependencies(db, authService))

	log.Printf("server starting on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newRouter(deps handlers.Dependencies) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handlers.SetupRoutes(r, deps)
	return r
}
