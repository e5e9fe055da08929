package covers

// Config holds configuration for cover selection and upload.
type Config struct {
	// SteamDir holds cached Steam capsule images named <steam_id>.png.
	SteamDir string `mapstructure:"steam_dir" default:"cache/steam/cd"`
	// IGDBDir holds cached IGDB capsule images named <igdb_id>.png.
	IGDBDir string `mapstructure:"igdb_dir" default:"cache/igdb/cd"`
	// CDN is the public base URI of the uploaded covers.
	CDN string `mapstructure:"cdn" default:""`
	// Prefix is the object key prefix inside the bucket.
	Prefix string `mapstructure:"prefix" default:"cover/"`
}
