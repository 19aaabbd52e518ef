package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloudcache/config"
	"cloudcache/handler"
	"cloudcache/middleware"
	"cloudcache/repository"
	"cloudcache/services"
	"cloudcache/usecase"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitMongoClient()
}

func setupRouter(authConfig config.AuthConfig) *gin.Engine {
	router := gin.Default()

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	tokenRepo := repository.GetTokenRepo(utils.MongoClient)
	notebookRepo := repository.GetNotebookRepo(utils.MongoClient)
	noteRepo := repository.GetNoteRepo(utils.MongoClient)

	// Services
	userService := &usecase.UserService{
		UsersRepo:     userRepo,
		NotebooksRepo: notebookRepo,
		NotesRepo:     noteRepo,
		TokensRepo:    tokenRepo,
	}
	tokenService := usecase.NewTokenService(tokenRepo, userRepo, authConfig.TokenTTL)
	notebookService := &usecase.NotebookService{
		NotebooksRepo: notebookRepo,
		NotesRepo:     noteRepo,
	}
	noteService := &usecase.NoteService{
		NotesRepo:     noteRepo,
		NotebooksRepo: notebookRepo,
	}

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes: registration and token issuance, rate limited
	public := router.Group("/api")
	public.Use(middleware.RateLimitMiddleware(services.GlobalRateLimiter))
	{
		public.POST("/users", func(c *gin.Context) {
			handler.RegistrationHandler(c, userService)
		})
		public.POST("/auth/token", func(c *gin.Context) {
			handler.TokenHandler(c, tokenService)
		})
	}

	// Protected routes: every request resolves its bearer token first
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokenService))
	{
		protected.GET("/stats", handler.StatsHandler)

		protected.GET("/users/:username", func(c *gin.Context) {
			handler.GetUserHandler(c, notebookService, noteService)
		})
		protected.DELETE("/users", func(c *gin.Context) {
			handler.DeleteUserHandler(c, userService)
		})

		notebooks := protected.Group("/notebooks")
		{
			notebooks.GET("", func(c *gin.Context) {
				handler.ListNotebooksHandler(c, notebookService)
			})
			notebooks.POST("", func(c *gin.Context) {
				handler.CreateNotebookHandler(c, notebookService)
			})
			notebooks.GET("/:id", func(c *gin.Context) {
				handler.GetNotebookHandler(c, notebookService, noteService)
			})
			notebooks.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNotebookHandler(c, notebookService)
			})
			notebooks.POST("/:id/notes", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notebookService, noteService)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, noteService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, noteService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, noteService)
			})
		}
	}

	return router
}

func main() {
	databaseConfig := config.LoadDatabaseConfig()
	authConfig := config.LoadAuthConfig()

	db := utils.MongoClient.Database(databaseConfig.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	if authConfig.RedisURL != "" {
		limiter, err := services.NewRateLimiter(authConfig.RedisURL, authConfig.RateLimit, authConfig.RateWindow)
		if err != nil {
			log.Fatalf("Failed to connect rate limiter: %v", err)
		}
		services.GlobalRateLimiter = limiter
		defer limiter.Close()
	}

	if authConfig.SweepInterval > 0 {
		sweeper := services.NewTokenSweeper(repository.GetTokenRepo(utils.MongoClient), authConfig.SweepInterval)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sweeper.Run(ctx)
		log.Printf("Token sweeper running every %s", authConfig.SweepInterval)
	}

	router := setupRouter(authConfig)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
