package search

import (
	"context"
	"fmt"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/storage"
	"hvac-matcher/feature/search/models"

	"go.uber.org/zap"
)

// Seeder loads the catalog document from object storage into the
// catalog_units table.
type Seeder struct {
	client storage.Client
	bucket string
	object string
	repo   *Repository
	master *schema.Master
	logger *zap.Logger
}

// NewSeeder creates a seeder.
func NewSeeder(client storage.Client, bucket, object string, repo *Repository, master *schema.Master, logger *zap.Logger) *Seeder {
	return &Seeder{
		client: client,
		bucket: bucket,
		object: object,
		repo:   repo,
		master: master,
		logger: logger,
	}
}

// Seed replaces the catalog table with the document contents. Units naming
// a family the master schema does not know are skipped with a warning; a
// stale export must not poison the matcher. Returns the number of rows
// written.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	units, err := LoadCatalogDocument(ctx, s.client, s.bucket, s.object)
	if err != nil {
		return 0, err
	}

	kept := make([]models.CatalogUnit, 0, len(units))
	for _, u := range units {
		if u.Model == "" {
			s.logger.Warn("Skipping catalog unit without a model number")
			continue
		}
		if u.Family != "" {
			if _, ok := s.master.Family(u.Family); !ok {
				s.logger.Warn("Skipping catalog unit with unknown family",
					zap.String("model", u.Model),
					zap.String("family", u.Family))
				continue
			}
		}
		kept = append(kept, u)
	}

	if err := s.repo.Replace(ctx, kept); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}

	s.logger.Info("Catalog seeded",
		zap.Int("written", len(kept)),
		zap.Int("skipped", len(units)-len(kept)))
	return len(kept), nil
}
