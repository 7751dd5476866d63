package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Fetcher struct {
	httpClient *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch retrieves feedURL and parses it as RSS into a normalized Feed.
// It does not check the allow-list; callers validate before fetching.
func (f *Fetcher) Fetch(feedURL string) (*Feed, error) {
	resp, err := f.httpClient.Get(feedURL)
	if err != nil {
		return nil, fmt.Errorf("feed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed fetch: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed read: %w", err)
	}

	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("feed parse: %w", err)
	}

	ch := doc.Channel
	result := &Feed{
		Title:       ch.Title,
		Link:        ch.Link,
		Description: ch.Description,
		Image:       ch.Image.URL,
		Items:       make([]Item, 0, len(ch.Items)),
	}

	for _, it := range ch.Items {
		image := it.Enclosure.URL
		if image == "" {
			image = it.MediaContent.URL
		}

		guid := it.GUID
		if guid == "" {
			guid = it.Link
		}

		result.Items = append(result.Items, Item{
			GUID:        guid,
			Title:       it.Title,
			Description: it.Description,
			PubDate:     parsePubDate(it.PubDate),
			Link:        it.Link,
			Image:       image,
		})
	}

	return result, nil
}

func parsePubDate(raw string) time.Time {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

type rssDocument struct {
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Image       rssImage  `xml:"image"`
	Items       []rssItem `xml:"item"`
}

type rssImage struct {
	URL string `xml:"url"`
}

type rssItem struct {
	GUID         string       `xml:"guid"`
	Title        string       `xml:"title"`
	Description  string       `xml:"description"`
	PubDate      string       `xml:"pubDate"`
	Link         string       `xml:"link"`
	Enclosure    rssEnclosure `xml:"enclosure"`
	MediaContent rssEnclosure `xml:"http://search.yahoo.com/mrss/ content"`
}

type rssEnclosure struct {
	URL string `xml:"url,attr"`
}
