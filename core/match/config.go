package match

// Config holds configuration for the replacement matcher.
type Config struct {
	// TonsTolerance is the capacity band around the requested tonnage.
	TonsTolerance float64 `mapstructure:"tons_tolerance" default:"0.5"`
	// CatalogSource selects where the catalog comes from: "database" or
	// "document" (the JSON export in the storage bucket).
	CatalogSource string `mapstructure:"catalog_source" default:"database"`
	// CatalogObject is the catalog document name in the storage bucket.
	CatalogObject string `mapstructure:"catalog_object" default:"catalog.json"`
}
