package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"hvac-matcher/core/match"
	"hvac-matcher/core/storage"
	"hvac-matcher/feature/search/models"

	"github.com/minio/minio-go/v7"
)

// LoadCatalogDocument fetches the catalog JSON export from object storage
// and normalizes it into database rows. Document order is preserved; it
// becomes the catalog insertion order.
func LoadCatalogDocument(ctx context.Context, client storage.Client, bucket, object string) ([]models.CatalogUnit, error) {
	reader, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog document %s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog document: %w", err)
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}

	units := make([]models.CatalogUnit, 0, len(doc.Units))
	for _, du := range doc.Units {
		units = append(units, du.ToCatalogUnit())
	}
	return units, nil
}

// DocumentCatalog serves matcher entries straight from the storage
// document. Deployments without a database run the search feature on this
// source instead of the catalog_units table.
type DocumentCatalog struct {
	client storage.Client
	bucket string
	object string
}

// NewDocumentCatalog creates a storage-backed catalog source.
func NewDocumentCatalog(client storage.Client, bucket, object string) *DocumentCatalog {
	return &DocumentCatalog{client: client, bucket: bucket, object: object}
}

// Entries fetches the document and returns its active units as matcher
// entries.
func (d *DocumentCatalog) Entries(ctx context.Context) ([]match.Entry, error) {
	units, err := LoadCatalogDocument(ctx, d.client, d.bucket, d.object)
	if err != nil {
		return nil, err
	}
	entries := make([]match.Entry, 0, len(units))
	for _, u := range units {
		if u.Active != 1 {
			continue
		}
		entries = append(entries, u.ToEntry())
	}
	return entries, nil
}
