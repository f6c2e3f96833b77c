package database

import (
	"context"
	"database/sql"

	"github.com/jask/modernapp/internal/database/repository"
)

// DefaultCatalog is the fixed set of items shown in the grid.
var DefaultCatalog = []repository.CatalogItem{
	{ID: 1, Name: "Product A", Description: "High-quality product with excellent features.", ImageURL: "https://placehold.co/100x100/A78BFA/ffffff?text=ProdA"},
	{ID: 2, Name: "Service B", Description: "Reliable and efficient service tailored for your needs.", ImageURL: "https://placehold.co/100x100/60A5FA/ffffff?text=ServB"},
	{ID: 3, Name: "Solution C", Description: "Innovative solution to complex problems.", ImageURL: "https://placehold.co/100x100/34D399/ffffff?text=SoluC"},
	{ID: 4, Name: "Item D", Description: "Durable and stylish, a perfect addition.", ImageURL: "https://placehold.co/100x100/FACC15/ffffff?text=ItemD"},
	{ID: 5, Name: "Gadget E", Description: "Cutting-edge technology for modern living.", ImageURL: "https://placehold.co/100x100/FB923C/ffffff?text=GadgE"},
	{ID: 6, Name: "Software F", Description: "Boost your productivity with our intuitive software.", ImageURL: "https://placehold.co/100x100/EF4444/ffffff?text=SoftF"},
}

// SeedDefaults writes DefaultCatalog in one transaction.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewCatalogRepo(tx)
		for _, item := range DefaultCatalog {
			if err := repo.Upsert(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

// OpenCatalog opens the catalog store at path, migrates it and seeds it.
func OpenCatalog(ctx context.Context, path string) (*sql.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
