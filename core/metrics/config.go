package metrics

// Config holds metrics export settings.
type Config struct {
	// Textfile is the node-exporter textfile the counters are written to after
	// each command. Empty disables the export.
	Textfile  string `mapstructure:"textfile" default:""`
	Namespace string `mapstructure:"namespace" default:"gameframe"`
}
