package feed

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Example News</title>
    <link>https://example.com</link>
    <description>Front page</description>
    <image>
      <url>https://example.com/logo.png</url>
    </image>
    <item>
      <guid>https://example.com/a1</guid>
      <title>First article</title>
      <description>First snippet</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
      <link>https://example.com/articles/1</link>
      <enclosure url="https://example.com/a1.jpg" length="1" type="image/jpeg"/>
    </item>
    <item>
      <guid>https://example.com/a2</guid>
      <title>Second article</title>
      <description>Second snippet</description>
      <pubDate>Tue, 03 Jan 2006 10:00:00 GMT</pubDate>
      <link>https://example.com/articles/2</link>
      <media:content url="https://example.com/a2.jpg"/>
    </item>
    <item>
      <title>Third article</title>
      <description>Third snippet</description>
      <link>https://example.com/articles/3</link>
    </item>
  </channel>
</rss>`

func newFeedServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestFetch_ParsesFeed(t *testing.T) {
	srv := newFeedServer(http.StatusOK, sampleRSS)
	defer srv.Close()

	result, err := NewFetcher().Fetch(srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Example News", result.Title)
	assert.Equal(t, "https://example.com", result.Link)
	assert.Equal(t, "Front page", result.Description)
	assert.Equal(t, "https://example.com/logo.png", result.Image)
	assert.Equal(t, 3, len(result.Items))

	first := result.Items[0]
	assert.Equal(t, "https://example.com/a1", first.GUID)
	assert.Equal(t, "First article", first.Title)
	assert.Equal(t, "First snippet", first.Description)
	assert.Equal(t, "https://example.com/articles/1", first.Link)
	assert.Equal(t, "https://example.com/a1.jpg", first.Image)
	assert.Equal(t, 2006, first.PubDate.Year())
	assert.Equal(t, time.January, first.PubDate.Month())
	assert.Equal(t, 2, first.PubDate.Day())
}

func TestFetch_MediaContentImage(t *testing.T) {
	srv := newFeedServer(http.StatusOK, sampleRSS)
	defer srv.Close()

	result, err := NewFetcher().Fetch(srv.URL)

	assert.Equal(t, nil, err)

	second := result.Items[1]
	assert.Equal(t, "https://example.com/a2.jpg", second.Image)
	assert.Equal(t, 3, second.PubDate.Day())
}

func TestFetch_MissingGUIDFallsBackToLink(t *testing.T) {
	srv := newFeedServer(http.StatusOK, sampleRSS)
	defer srv.Close()

	result, err := NewFetcher().Fetch(srv.URL)

	assert.Equal(t, nil, err)

	third := result.Items[2]
	assert.Equal(t, "https://example.com/articles/3", third.GUID)
	assert.Equal(t, "", third.Image)
	assert.Equal(t, true, third.PubDate.IsZero())
}

func TestFetch_Non200Status(t *testing.T) {
	srv := newFeedServer(http.StatusInternalServerError, "boom")
	defer srv.Close()

	_, err := NewFetcher().Fetch(srv.URL)

	assert.NotEqual(t, nil, err)
}

func TestFetch_InvalidXML(t *testing.T) {
	srv := newFeedServer(http.StatusOK, "this is not a feed")
	defer srv.Close()

	_, err := NewFetcher().Fetch(srv.URL)

	assert.NotEqual(t, nil, err)
}

func TestItemExternalID(t *testing.T) {
	item := Item{
		GUID:  "guid-1",
		Link:  "https://example.com/articles/1",
		Title: "A title",
	}

	assert.Equal(t, "guid-1", item.ExternalID("guid"))
	assert.Equal(t, "guid-1", item.ExternalID(""))
	assert.Equal(t, "guid-1", item.ExternalID("unknown"))
	assert.Equal(t, "https://example.com/articles/1", item.ExternalID("link"))
	assert.Equal(t, "A title", item.ExternalID("title"))
}
