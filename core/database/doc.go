// Package database handles registry database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs, tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect establishes a connection and verifies it with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns. The registry cache uses it before
// loading an index: a missing table or index column means the registry is
// unreadable, which is the only fatal condition of a merge or clean command.
//
// # Usage
//
//	db, err := database.Connect(cfg.Registry)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(db, "cached_game")
package database
