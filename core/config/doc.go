// Package config loads the GameFrame configuration.
//
// Values come from the environment, optionally overlaid by a .env file, with
// defaults taken from the `default` struct tags of every section. Keys map to
// environment variables as SECTION_FIELD, e.g. registry.driver is
// REGISTRY_DRIVER and merge.tweet_cap is MERGE_TWEET_CAP.
//
// # Sections
//
//   - Registry: registry database (mysql or sqlite)
//   - Storage: MinIO/S3 bucket receiving uploaded covers
//   - Log: level and encoding
//   - Server: catalog API address and key
//   - Merge: tweet cap, title blacklist, outlet whitelist, trim
//   - Covers: cover cache directories and CDN
//   - Metrics: textfile path
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	db, err := database.Connect(cfg.Registry)
package config
