package db

import "database/sql"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS articles (
		id               BIGSERIAL PRIMARY KEY,
		external_id      TEXT NOT NULL UNIQUE,
		import_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
		title            TEXT NOT NULL DEFAULT '',
		description      TEXT NOT NULL DEFAULT '',
		publication_date TIMESTAMPTZ,
		link             TEXT NOT NULL DEFAULT '',
		main_picture     TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS imports (
		id          BIGSERIAL PRIMARY KEY,
		import_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		raw_content TEXT NOT NULL
	)`,
}

// EnsureSchema creates the articles and imports tables on boot if they do
// not exist yet.
func EnsureSchema(database *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
