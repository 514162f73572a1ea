// Package sink persists canonical records beyond the per-document JSON
// artifacts. The SQLite catalog gives one queryable table across a
// whole corpus run.
package sink

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/skuforge/skuforge/internal/model"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS records (
	doc         TEXT NOT NULL,
	id          TEXT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	price       REAL,
	attributes  TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_records_doc ON records(doc);
CREATE INDEX IF NOT EXISTS idx_records_id ON records(id);
`

// Catalog is a SQLite-backed record store. Ids are deliberately not
// unique: duplicates legitimately occur across documents.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens (or creates) the catalog database.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// StoreDocument replaces one document's records in a single
// transaction, so a failed store never leaves a half-written document.
func (c *Catalog) StoreDocument(doc string, records []model.Record) (err error) {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM records WHERE doc = ?`, doc); err != nil {
		return fmt.Errorf("clear document: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records (doc, id, title, description, price, attributes) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records {
		attrs, jsonErr := json.Marshal(rec.Attributes)
		if jsonErr != nil {
			err = fmt.Errorf("marshal attributes: %w", jsonErr)
			return err
		}
		var price any
		if rec.Price != nil {
			price = *rec.Price
		}
		if _, err = stmt.Exec(doc, rec.ID, rec.Title, rec.Description, price, string(attrs)); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored records.
func (c *Catalog) Count() (int, error) {
	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}
