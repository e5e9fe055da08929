// Package reconcile merges the registry into the working set and cleans
// low-quality registry rows.
//
// # Architecture
//
// The package consists of three main components:
//
// 1. Engine: runs one merge pass per entity type. Each pass loads the
// registry index, skips rows without payloads, picks the display name by
// provider priority, builds or fetches the canonical entity, lets every
// present provider enrich it, then links it to its parent game.
//
// 2. Sources: provider adapters. A source implements whichever capability
// interfaces apply to it (GameBuilder, ArticleValidator, TweetRelevance, ...)
// and the engine only calls what is implemented. Payloads are decoded into
// explicit schemas with Decode; a present payload missing a required field is
// a *MalformedPayloadError.
//
// 3. Cleaner: plans the deletion of registry rows that no provider validates
// (and, for tweets, that are not about their game). ApplyClean executes a plan
// only when the operator confirmed and it is not a dry run.
//
// # Provider priority
//
// Payloads are visited in a fixed order per type: Steam then IGDB for games,
// Steam then NewsAPI for articles. The first provider supplies the dedup key.
// Every provider then enriches the entity in the same order, so the last
// provider to set a scalar field wins.
//
// # Failure
//
// Row problems never abort a pass; they are logged and counted in the
// Report. Only registry.ErrRegistryUnreadable stops a command.
//
// # Usage Example
//
//	sources := reconcile.NewSources(steam.New(), igdb.New(), newsapi.New(whitelist))
//	engine := reconcile.NewEngine(cache, workingset.New(), sources, reconcile.DefaultOptions(), logger, nil)
//	reports, err := engine.MergeAll(ctx)
//
//	cleaner := reconcile.NewCleaner(engine)
//	plan, err := cleaner.PlanClean(ctx, registry.KindArticle)
//	deleted, err := cleaner.ApplyClean(ctx, plan, reconcile.CleanOptions{Confirmed: true})
package reconcile
