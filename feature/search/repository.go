package search

import (
	"context"
	"fmt"

	"hvac-matcher/core/match"
	"hvac-matcher/feature/search/models"

	"gorm.io/gorm"
)

// Repository reads and writes the catalog_units table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an established connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns the active catalog rows in insertion order.
func (r *Repository) ListActive(ctx context.Context) ([]models.CatalogUnit, error) {
	var units []models.CatalogUnit
	err := r.db.WithContext(ctx).
		Where("active = ?", 1).
		Order("id").
		Find(&units).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog units: %w", err)
	}
	return units, nil
}

// Entries returns the active catalog as matcher entries.
func (r *Repository) Entries(ctx context.Context) ([]match.Entry, error) {
	units, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]match.Entry, 0, len(units))
	for _, u := range units {
		entries = append(entries, u.ToEntry())
	}
	return entries, nil
}

// Replace swaps the whole table for the given rows in one transaction.
// Seeding is a full-document operation; partial catalogs are never left
// behind on failure.
func (r *Repository) Replace(ctx context.Context, units []models.CatalogUnit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CatalogUnit{}).Error; err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
		if len(units) == 0 {
			return nil
		}
		if err := tx.Create(&units).Error; err != nil {
			return fmt.Errorf("failed to insert catalog units: %w", err)
		}
		return nil
	})
}
