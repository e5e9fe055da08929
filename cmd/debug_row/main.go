package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"gameframe/core/config"
	"gameframe/core/database"
	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/feature/sources/igdb"
	"gameframe/feature/sources/newsapi"
	"gameframe/feature/sources/steam"
	"gameframe/feature/sources/twitter"
	"gameframe/feature/sources/youtube"

	"go.uber.org/zap"
)

// Shows how every adapter reads one registry row: the title it extracts and
// whether the row passes validation.
func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: debug_row <game|developer|article|video|tweet> <id>")
		os.Exit(2)
	}
	id, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("invalid id %q: %v", os.Args[2], err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	db, err := database.Connect(cfg.Registry)
	if err != nil {
		log.Fatal(err)
	}

	cache := registry.New(db, zap.NewNop())
	sources := reconcile.NewSources(
		steam.NewAdapter(),
		igdb.NewAdapter(),
		newsapi.NewAdapter(cfg.Merge.OutletList()),
		youtube.NewAdapter(),
		twitter.NewAdapter(),
	)
	ctx := context.Background()

	var row registry.Row
	switch os.Args[1] {
	case "game":
		row, err = find[registry.CachedGame](ctx, cache, id)
	case "developer":
		row, err = find[registry.CachedDeveloper](ctx, cache, id)
	case "article":
		row, err = find[registry.CachedArticle](ctx, cache, id)
	case "video":
		row, err = find[registry.CachedVideo](ctx, cache, id)
	case "tweet":
		row, err = find[registry.CachedTweet](ctx, cache, id)
	default:
		log.Fatalf("unknown kind %q", os.Args[1])
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== %s ===\n", registry.Describe(row))
	for _, p := range row.Payloads() {
		if !p.Present() {
			fmt.Printf("%-8s (no data)\n", p.Provider)
			continue
		}
		pretty, _ := json.MarshalIndent(json.RawMessage(p.Data), "  ", "  ")
		fmt.Printf("%-8s\n  %s\n", p.Provider, pretty)

		src, ok := sources.Get(p.Provider)
		if !ok {
			continue
		}
		if v, ok := src.(reconcile.ArticleValidator); ok && row.Kind() == registry.KindArticle {
			fmt.Printf("  valid article: %v\n", v.ValidateArticle(p.Data))
		}
		if v, ok := src.(reconcile.VideoValidator); ok && row.Kind() == registry.KindVideo {
			fmt.Printf("  valid video: %v\n", v.ValidateVideo(p.Data))
		}
		if v, ok := src.(reconcile.TweetValidator); ok && row.Kind() == registry.KindTweet {
			fmt.Printf("  valid tweet: %v\n", v.ValidateTweet(p.Data))
		}
	}

	title, err := sources.Title(row.Kind(), row.Payloads())
	if err != nil {
		fmt.Printf("\ntitle: error: %v\n", err)
		return
	}
	fmt.Printf("\ntitle: %q author: %q\n", title.Name, title.Author)
}

func find[T registry.Row](ctx context.Context, cache *registry.Cache, id int) (registry.Row, error) {
	var zero T
	ix, err := registry.Load[T](ctx, cache, zero.PrimaryKey())
	if err != nil {
		return nil, err
	}
	rows := ix.Get(id)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %d not found", zero.Kind(), id)
	}
	return rows[0], nil
}
