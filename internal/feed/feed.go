package feed

import "time"

type Feed struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Items       []Item `json:"items"`
}

type Item struct {
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubdate"`
	Link        string    `json:"link"`
	Image       string    `json:"image,omitempty"`
}

// ExternalID resolves the field used as the feed-provided primary key.
// Unknown field names fall back to the GUID.
func (it Item) ExternalID(field string) string {
	switch field {
	case "link":
		return it.Link
	case "title":
		return it.Title
	default:
		return it.GUID
	}
}
