// Package text turns free-form provider strings into comparison keys.
//
// Keys are lower-case, accent-free and punctuation-free, so "Half-Life 2" and
// "half-life 2!" condition to the same key. Four flavours exist:
//
//   - Condition: general dedup key for titles and names.
//   - ConditionDeveloper: Condition without trailing corporate suffixes.
//   - ConditionHeavy: Condition without edition and platform noise, used for
//     relevance containment checks rather than equality.
//   - Keywordize: a provider search query for a game or developer.
//
// All functions are pure. The only failure is ErrEmptyText.
package text
