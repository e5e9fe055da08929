// Package covers picks the best cover image of every merged game and
// publishes it.
//
// Three candidates are considered: the cached Steam capsule, the IGDB cover
// and the cached IGDB capsule. The Steam capsule always wins; between the
// two IGDB images the one with the larger pixel area is kept. Remote IGDB
// covers are linked directly, local images are uploaded to the bucket under
// <prefix><steam_id>-<igdb_id>.png and the game points at the CDN copy.
package covers
