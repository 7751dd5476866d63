package repository

import (
	"database/sql"

	"github.com/mwargan/Coding-Test-for-ES/internal/model"
)

type ImportRepository struct {
	db *sql.DB
}

func NewImportRepository(db *sql.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

// Save appends one row to the import ledger. The ledger is append-only:
// rows are never updated or deleted, and the timestamp is assigned by the
// database.
func (r *ImportRepository) Save(rawContent string) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO imports(raw_content)
		VALUES($1)
		RETURNING id
	`, rawContent).Scan(&id)
	return id, err
}

func (r *ImportRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM imports
	`).Scan(&total)
	return total, err
}

func (r *ImportRepository) GetAll() ([]model.ImportRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, import_date, raw_content
		FROM imports
		ORDER BY id
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ImportRecord
	for rows.Next() {
		var rec model.ImportRecord
		if err := rows.Scan(&rec.ID, &rec.ImportDate, &rec.RawContent); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
