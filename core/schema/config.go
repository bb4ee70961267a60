package schema

// Config holds configuration for locating the master schema document.
type Config struct {
	// Path is the local JSON file to load the schema from.
	Path string `mapstructure:"path" default:"schema.json"`
	// Object is the object name in the storage bucket to load instead of
	// Path when set (e.g. "schema/master.json").
	Object string `mapstructure:"object" default:""`
}
