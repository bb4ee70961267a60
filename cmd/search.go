package cmd

import (
	"fmt"
	"os"

	"hvac-matcher/core/database"
	"hvac-matcher/core/match"
	"hvac-matcher/core/storage"
	"hvac-matcher/core/unit"
	"hvac-matcher/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	searchSystemType string
	searchFamily     string
	searchTons       float64
	searchTolerance  float64
	searchHeatingBTU int
	searchVoltage    string
	searchPhase      int
	searchLimit      int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog for replacement units",
	Long:  `Ranks catalog units against the given criteria and prints the candidates.`,
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

		var catalog search.Catalog
		if cfg.Matcher.CatalogSource == "document" {
			catalog = search.NewDocumentCatalog(store, cfg.Storage.Bucket, cfg.Matcher.CatalogObject)
		} else {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				logg.Fatal("Failed to connect to catalog database", zap.Error(err))
			}
			catalog = search.NewRepository(db)
		}

		svc := search.NewService(catalog, master, logg, cfg.Matcher.TonsTolerance)

		criteria := match.Criteria{
			SystemType:    unit.SystemType(searchSystemType),
			Family:        searchFamily,
			Tons:          searchTons,
			TonsTolerance: searchTolerance,
			HeatingBTU:    searchHeatingBTU,
			Voltage:       searchVoltage,
			Phase:         searchPhase,
			Limit:         searchLimit,
		}

		candidates, err := svc.Search(cmd.Context(), criteria)
		if err != nil {
			logg.Fatal("Search failed", zap.Error(err))
		}

		if len(candidates) == 0 {
			fmt.Println("No catalog unit matches the criteria.")
			os.Exit(0)
		}

		fmt.Printf("\n--- Replacement Candidates (%d) ---\n", len(candidates))
		for i, c := range candidates {
			marker := ""
			if c.HeatingFallback {
				marker = "  (nearest heating)"
			}
			fmt.Printf("%2d. %-18s %4.1f t", i+1, c.Model, c.Spec.Tons)
			if c.Spec.HeatingBTU > 0 {
				fmt.Printf("  %6d BTU", c.Spec.HeatingBTU)
			}
			fmt.Printf("  %s/%d%s\n", c.Spec.Voltage, c.Spec.Phase, marker)
		}
		fmt.Println("-----------------------------------")
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchSystemType, "system-type", "", "system type (gas_electric, heat_pump, straight_ac)")
	searchCmd.Flags().StringVar(&searchFamily, "family", "", "restrict to one family code")
	searchCmd.Flags().Float64Var(&searchTons, "tons", 0, "requested cooling capacity in tons")
	searchCmd.Flags().Float64Var(&searchTolerance, "tolerance", 0, "capacity tolerance band in tons")
	searchCmd.Flags().IntVar(&searchHeatingBTU, "heating-btu", 0, "requested gas heating input in BTU/h")
	searchCmd.Flags().StringVar(&searchVoltage, "voltage", "", "electrical rating (e.g. 208-230 or 460)")
	searchCmd.Flags().IntVar(&searchPhase, "phase", 0, "electrical phase (1 or 3)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "cap the number of candidates")
	RootCmd.AddCommand(searchCmd)
}
