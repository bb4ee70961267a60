// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. The
// connection is optional: deployments can run the engine endpoints without a
// catalog database and serve the catalog from a storage document instead.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The seed command
// verifies the catalog_units table columns before writing, so a drifted table
// fails loudly instead of dropping values.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyTable(db, "catalog_units", expected)
package database
