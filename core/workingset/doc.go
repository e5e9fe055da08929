// Package workingset holds the canonical entity graph of one command run.
//
// A Set is built from scratch by the reconciliation engine every time a
// command starts. Build functions are dedup factories: the first row whose
// comparison key is new creates the entity, later rows with the same key get
// the existing entity back and their internal ids become aliases of it.
// Lookups are exact, by internal id, comparison key or provider id.
//
// Relationships are append-if-absent. Linking an article to a game also links
// it to every developer of that game, and crediting a developer on a game
// carries the game's articles over, so a developer's articles are always the
// union of its games' articles.
package workingset
