// Prints per-category song counts and the best song of every configured
// dataset variant, to check a data directory before serving it.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/config"
)

func main() {
	configPath := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	variants := catalog.DefaultVariants
	if len(cfg.Variants) > 0 {
		variants = nil
		for _, v := range cfg.Variants {
			variants = append(variants, catalog.Variant{Description: v.Description, File: v.File, Curated: v.Curated})
		}
	}

	provider := catalog.NewProvider(os.DirFS(cfg.GetDataDir()))
	log.Printf("Data directory: %s", cfg.GetDataDir())

	trending, err := provider.Trending(cfg.GetTrendingFile())
	if err != nil {
		log.Fatalf("Failed to load trending table: %v", err)
	}
	log.Printf("Trending: %s songs", humanize.Comma(int64(trending.Len())))

	failed := 0
	for _, v := range variants {
		songs, err := provider.Main(v.File)
		if err != nil {
			log.Printf("[%s] %s: %v", v.Type(), v.Description, err)
			failed++
			continue
		}
		log.Printf("[%s] %s: %s songs", v.Type(), v.Description, humanize.Comma(int64(songs.Len())))

		for _, c := range catalog.Categories(songs) {
			table := catalog.Filter(songs, trending, c)
			best, ok := table.Best()
			if !ok {
				log.Printf("  %-24s empty", c)
				continue
			}
			log.Printf("  %-24s %6s  top: %s by %s (%s %s)",
				c, humanize.Comma(int64(table.Len())), best.Name, best.Artist, best.Score.Label(), best.Score)
		}
	}

	if failed > 0 {
		log.Fatalf("%d of %d variants failed to load", failed, len(variants))
	}
}
