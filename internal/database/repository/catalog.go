package repository

import (
	"context"
	"database/sql"
	"errors"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("catalog item not found")

// CatalogRepo handles catalog items.
type CatalogRepo struct {
	db DBTX
}

func NewCatalogRepo(db DBTX) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Upsert(ctx context.Context, c CatalogItem) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO catalog_items(id, name, description, image_url)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 image_url=excluded.image_url;
	`, c.ID, c.Name, c.Description, c.ImageURL)
	return err
}

// List returns every item ordered by id.
func (r *CatalogRepo) List(ctx context.Context) ([]CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, image_url FROM catalog_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CatalogItem
	for rows.Next() {
		var c CatalogItem
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) Get(ctx context.Context, id int) (CatalogItem, error) {
	var c CatalogItem
	err := r.db.QueryRowContext(ctx, `SELECT id, name, description, image_url FROM catalog_items WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return CatalogItem{}, ErrNotFound
	}
	return c, err
}

func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&n)
	return n, err
}
