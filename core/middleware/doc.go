// Package middleware groups the HTTP middleware of the catalog server.
//
//   - auth: API key validation through X-API-Key or a bearer token.
//   - rayid: a per-request id stored in the context locals and echoed in the
//     X-Ray-ID response header, picked up by logger.WithRayID.
package middleware
