package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/mwargan/Coding-Test-for-ES/db"
	"github.com/mwargan/Coding-Test-for-ES/internal/config"
	"github.com/mwargan/Coding-Test-for-ES/internal/feed"
	"github.com/mwargan/Coding-Test-for-ES/internal/handler"
	"github.com/mwargan/Coding-Test-for-ES/internal/importer"
	"github.com/mwargan/Coding-Test-for-ES/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("error preparing schema: %v", err)
	}

	articleRepo := repository.NewArticleRepository(database)
	importRepo := repository.NewImportRepository(database)

	importService := importer.NewService(feed.NewFetcher(), articleRepo, importRepo, importer.Config{
		DefaultFeedURL:  cfg.DefaultFeedURL,
		SupportedFeeds:  cfg.SupportedFeeds,
		ExternalIDField: cfg.ExternalIDField,
	})

	articleHandler := handler.NewArticleHandler(articleRepo, importService)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/articles", articleHandler.GetArticles)
	r.POST("/api/articles/import", articleHandler.ImportArticles)
	r.GET("/health", articleHandler.GetHealth)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
