package handler

// Field names are lowercase without separators; clients of the original API
// depend on this exact shape.
type ArticleResponse struct {
	ID                 int64  `json:"id"`
	ExternalID         string `json:"externalid"`
	ImportDate         string `json:"importdate"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	PublicationDate    string `json:"publicationdate"`
	Link               string `json:"link"`
	MainPicture        string `json:"mainpicture"`
	WordWithMostVowels string `json:"wordwithmostvowels"`
}
