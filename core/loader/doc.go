// Package loader mounts optional features on the HTTP server.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registered features and LoadAll mounts the enabled
// ones in registration order. The serve command uses it to expose the
// catalog of the merged working set.
package loader
