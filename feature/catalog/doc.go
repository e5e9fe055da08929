// Package catalog serves the merged working set read-only over HTTP.
//
// # Routes
//
//	GET /games            ?q= &genre= &platform= &limit= &offset=
//	GET /games/:id        game with developers, articles, videos and tweets
//	GET /developers/:id   developer with games and articles
//	GET /articles         newest first, ?limit= &offset=
//	GET /stats            entity and relationship counts
//
// Ids are internal registry ids; any alias id of a deduplicated entity
// resolves to the same game or developer.
package catalog
