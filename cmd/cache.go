package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// CacheStats prints the matcher's cache sizes.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	searches, matches := r.matcher.CacheStats()

	if cmd.Bool("json") {
		return r.writeJSON(map[string]int{"searches": searches, "matches": matches}, true)
	}

	r.writePlain("Search cache: %d entries\n", searches)
	r.writePlain("Match cache: %d entries\n", matches)
	return nil
}

// CacheClear drops the matcher's search and match caches.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	r.matcher.ClearCache()
	r.logger.Info("matcher caches cleared")
	return r.writePlain("✓ Caches cleared\n")
}

// cacheCommand inspects and clears the in-process match caches
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and clear match caches",
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Show cache entry counts",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Emit JSON"},
				},
				Action: r.CacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Drop all cached searches and matches",
				Action: r.CacheClear,
			},
		},
	}
}
