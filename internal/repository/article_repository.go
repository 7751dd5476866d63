package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mwargan/Coding-Test-for-ES/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const upsertArticleQuery = `
	INSERT INTO articles(external_id, title, description, publication_date, link, main_picture)
	VALUES($1, $2, $3, $4, $5, $6)
	ON CONFLICT (external_id) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		publication_date = EXCLUDED.publication_date,
		link = EXCLUDED.link,
		main_picture = EXCLUDED.main_picture
	RETURNING id
`

// Upsert inserts the article or, when its external id is already present,
// overwrites the existing row's mutable fields. Last write wins. The row id
// is written back into article.
func (r *ArticleRepository) Upsert(article *model.Article) error {
	return r.db.QueryRow(upsertArticleQuery,
		article.ExternalID, article.Title, article.Description,
		nullTime(article.PublicationDate), article.Link, nullString(article.MainPicture),
	).Scan(&article.ID)
}

// UpsertAll writes every article over a single pooled connection so one
// import does not reacquire a connection per entry. A failure aborts the
// remaining articles; earlier writes are not rolled back.
func (r *ArticleRepository) UpsertAll(articles []model.Article) error {
	ctx := context.Background()

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for i := range articles {
		a := &articles[i]
		err := conn.QueryRowContext(ctx, upsertArticleQuery,
			a.ExternalID, a.Title, a.Description,
			nullTime(a.PublicationDate), a.Link, nullString(a.MainPicture),
		).Scan(&a.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *ArticleRepository) GetAll() ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, external_id, import_date, title, description, publication_date, link, main_picture
		FROM articles
		ORDER BY id
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		var publicationDate sql.NullTime
		var mainPicture sql.NullString

		err := rows.Scan(&a.ID, &a.ExternalID, &a.ImportDate, &a.Title, &a.Description, &publicationDate, &a.Link, &mainPicture)
		if err != nil {
			return nil, err
		}

		a.PublicationDate = publicationDate.Time
		a.MainPicture = mainPicture.String
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM articles
	`).Scan(&total)
	return total, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
