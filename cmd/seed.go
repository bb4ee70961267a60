package cmd

import (
	"fmt"

	"hvac-matcher/core/database"
	"hvac-matcher/core/storage"
	"hvac-matcher/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogTableColumns are the columns the seeder writes. Verified against
// the live table before any rows are touched.
var catalogTableColumns = []string{
	"id", "model", "family", "system_type", "tons", "heating_btu",
	"electric_heat_kw", "voltage", "phase", "refrigerant", "active",
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog table from the storage document",
	Long: `Loads the catalog JSON document from object storage and replaces the
contents of the catalog_units table with it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := mustSetup()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		master, err := loadMaster(cmd.Context(), cfg, store, logg)
		if err != nil {
			logg.Fatal("Failed to load master schema", zap.Error(err))
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to catalog database", zap.Error(err))
		}

		missing, err := database.VerifyTable(db, "catalog_units", catalogTableColumns)
		if err != nil {
			logg.Fatal("Failed to inspect catalog table", zap.Error(err))
		}
		if len(missing) > 0 {
			logg.Fatal("Catalog table is missing columns", zap.Strings("missing", missing))
		}

		seeder := search.NewSeeder(store, cfg.Storage.Bucket, cfg.Matcher.CatalogObject,
			search.NewRepository(db), master, logg)

		written, err := seeder.Seed(cmd.Context())
		if err != nil {
			logg.Fatal("Seeding failed", zap.Error(err))
		}

		fmt.Printf("Catalog seeded: %d units written from %s/%s\n",
			written, cfg.Storage.Bucket, cfg.Matcher.CatalogObject)
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
