package model

import "time"

type Article struct {
	ID              int64
	ExternalID      string
	ImportDate      time.Time
	Title           string
	Description     string
	PublicationDate time.Time
	Link            string
	MainPicture     string
}

type ImportRecord struct {
	ID         int64
	ImportDate time.Time
	RawContent string
}
