// Package search implements the replacement search feature.
//
// It runs the core/match engine over a catalog of orderable units. The
// catalog comes from one of two sources:
//  1. Database: the catalog_units table (GORM/MySQL).
//  2. Storage (S3/MinIO): a JSON catalog export, for deployments without
//     a database.
//
// The catalog document in storage is also the seeding source for the
// database table (see Seeder and the seed command).
//
// # Components
//
//   - Repository: catalog_units table access and the full-replace seed write.
//   - DocumentCatalog: storage-backed catalog source.
//   - Seeder: loads the storage document into the table.
//   - Service: runs searches and the decode-then-search pipeline.
//   - Handler: exposes the HTTP endpoints.
//
// # HTTP Endpoints
//
//   - POST /search : Rank catalog units against explicit criteria.
//   - POST /replacements/suggest : Decode a data plate, then search.
package search
