// Package registry is the per-provider cache of raw payloads.
//
// Provider clients append rows to the registry tables; each row carries an
// internal id, optional provider ids and one nullable JSON payload per provider.
// The reconciliation engine only reads rows. The cleaner is the only caller of
// Delete.
//
// # Indices
//
// Load reads every row of a type into an Index keyed by one integer column
// (the internal id or a provider id). Loading is idempotent: a loaded index is
// returned as is until Unload or Delete drops it. Index.All yields rows in
// primary key order, which is the insertion order of the cache.
//
// # Failure
//
// A registry table or index column that cannot be read is ErrRegistryUnreadable.
// Delete removes a batch of rows inside one transaction, all or nothing.
package registry
