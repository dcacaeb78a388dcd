package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fakejournal-reader/config"
	"fakejournal-reader/handlers"
	"fakejournal-reader/helper"
	"fakejournal-reader/models"
	"fakejournal-reader/repositories"
	"fakejournal-reader/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalw("failed to initialize database", "cause", err)
	}

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	articleDataRepo := repositories.NewArticleDataRepository(db)
	articleSectionRepo := repositories.NewArticleSectionRepository(db)

	// Initialize services
	authService := services.NewAuthService(services.AuthServiceConfig{BaseURL: cfg.AuthServiceURL}, logger)
	articleService := services.NewArticleService(db, articleRepo, articleDataRepo, articleSectionRepo, logger)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper(logger)
	articleHandler := handlers.NewArticleHandler(articleService, authService, httpHelper)
	infoHandler := handlers.NewInfoHandler(cfg, httpHelper)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		httpHelper.SendAppError(c, models.ErrNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		httpHelper.SendAppError(c, models.ErrMethodNotAllowed)
	})

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// API routes
	public := router.Group("/public")
	{
		public.POST("/info", infoHandler.Info)
		public.POST("/article/new", articleHandler.ArticleNew)
		public.POST("/article_data/new", articleHandler.ArticleDataNew)
		public.POST("/article_section/new", articleHandler.ArticleSectionNew)
		public.POST("/article/view", articleHandler.ArticleView)
		public.POST("/article_data/view", articleHandler.ArticleDataView)
		public.POST("/article_section/view", articleHandler.ArticleSectionView)
		public.POST("/article_data/view_public", articleHandler.ArticleDataViewPublic)
		public.POST("/article_section/view_public", articleHandler.ArticleSectionViewPublic)
	}

	// Start server
	logger.Infow("server starting", "port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
