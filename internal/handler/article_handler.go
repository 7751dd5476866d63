package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mwargan/Coding-Test-for-ES/internal/feed"
	"github.com/mwargan/Coding-Test-for-ES/internal/importer"
	"github.com/mwargan/Coding-Test-for-ES/internal/model"

	"github.com/gin-gonic/gin"
)

type ArticleStore interface {
	GetAll() ([]model.Article, error)
	Count() (int, error)
}

type FeedImporter interface {
	Import(rawURL string, save bool) (*feed.Feed, error)
}

type ArticleHandler struct {
	repository ArticleStore
	importer   FeedImporter
}

func NewArticleHandler(repository ArticleStore, importer FeedImporter) *ArticleHandler {
	return &ArticleHandler{repository: repository, importer: importer}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.repository.GetAll()
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, ArticleResponse{
			ID:                 a.ID,
			ExternalID:         a.ExternalID,
			ImportDate:         a.ImportDate.Format(time.RFC3339),
			Title:              a.Title,
			Description:        a.Description,
			PublicationDate:    formatDate(a.PublicationDate),
			Link:               a.Link,
			MainPicture:        a.MainPicture,
			WordWithMostVowels: model.WordWithMostVowels(a.Title),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) ImportArticles(c *gin.Context) {
	siteRssUrl := c.Query("siteRssUrl")
	if siteRssUrl == "" {
		slog.Warn("import request without siteRssUrl")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "missing siteRssUrl query parameter"})
		return
	}

	result, err := h.importer.Import(siteRssUrl, true)
	if err != nil {
		var validationErr *importer.ValidationError
		var fetchErr *importer.FetchError

		switch {
		case errors.As(err, &validationErr):
			slog.Warn("rejected import request", "url", siteRssUrl, "error", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.As(err, &fetchErr):
			slog.Error("error fetching feed", "url", siteRssUrl, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching feed"})
		default:
			slog.Error("error importing feed", "url", siteRssUrl, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error importing feed"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
