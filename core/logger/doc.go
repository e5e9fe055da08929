// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the batch commands (merge, clean)
// and the read-only catalog server.
//
// # Context Awareness
//
// Batch commands tag every entry with a run_id so the progress of one invocation
// can be followed in aggregated logs. The WithRayID helper extracts the RayID from a
// Fiber context and attaches it to the log entry for HTTP requests.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRun(log)
//	log.Info("Merging games")
package logger
