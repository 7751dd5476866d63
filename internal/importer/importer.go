package importer

import (
	"encoding/json"
	"log/slog"

	"github.com/mwargan/Coding-Test-for-ES/internal/feed"
	"github.com/mwargan/Coding-Test-for-ES/internal/model"
)

type FeedFetcher interface {
	Fetch(url string) (*feed.Feed, error)
}

type ArticleStore interface {
	UpsertAll(articles []model.Article) error
}

type ImportStore interface {
	Save(rawContent string) (int64, error)
}

type Config struct {
	DefaultFeedURL  string
	SupportedFeeds  []string
	ExternalIDField string
}

type Service struct {
	fetcher  FeedFetcher
	articles ArticleStore
	imports  ImportStore
	cfg      Config
}

func NewService(fetcher FeedFetcher, articles ArticleStore, imports ImportStore, cfg Config) *Service {
	return &Service{
		fetcher:  fetcher,
		articles: articles,
		imports:  imports,
		cfg:      cfg,
	}
}

// Import fetches rawURL (or the configured default when rawURL is empty),
// records the raw payload in the import ledger, and reconciles every feed
// item against the article table keyed by its external id. Re-importing the
// same feed updates existing rows instead of duplicating them.
//
// With save=false the fetched feed is returned without touching storage.
func (s *Service) Import(rawURL string, save bool) (*feed.Feed, error) {
	feedURL := rawURL
	if feedURL == "" {
		feedURL = s.cfg.DefaultFeedURL
	}

	if !feed.IsValidURL(feedURL, s.cfg.SupportedFeeds) {
		return nil, &ValidationError{URL: feedURL}
	}

	result, err := s.fetcher.Fetch(feedURL)
	if err != nil {
		return nil, &FetchError{URL: feedURL, Err: err}
	}

	if !save {
		return result, nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, &StorageError{Op: "serialize import payload", Err: err}
	}

	// The ledger row goes in before any article is touched so that imports
	// which fail later are still auditable.
	if _, err := s.imports.Save(string(payload)); err != nil {
		return nil, &StorageError{Op: "record import", Err: err}
	}

	if len(result.Items) == 0 {
		return nil, ErrNoItems
	}

	articles := make([]model.Article, 0, len(result.Items))
	for _, item := range result.Items {
		picture := item.Image
		if picture == "" {
			picture = result.Image
		}

		articles = append(articles, model.Article{
			ExternalID:      item.ExternalID(s.cfg.ExternalIDField),
			Title:           item.Title,
			Description:     item.Description,
			PublicationDate: item.PubDate,
			Link:            item.Link,
			MainPicture:     picture,
		})
	}

	if err := s.articles.UpsertAll(articles); err != nil {
		return nil, &StorageError{Op: "save articles", Err: err}
	}

	slog.Info("feed imported", "url", feedURL, "items", len(result.Items))

	return result, nil
}
