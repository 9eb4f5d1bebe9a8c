package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autowatch/internal/seen"
)

var seenLimit int

var seenCmd = &cobra.Command{
	Use:   "seen",
	Short: "Inspect the scraper's de-duplication store",
	Long: `Show how many listings the scraper has already notified about and the most
recent ones. The store is opened read-only; the scraper owns all writes.`,
	Args: cobra.NoArgs,
	Run:  runSeen,
}

func runSeen(cmd *cobra.Command, args []string) {
	cfg := mustConfig()

	if _, err := os.Stat(cfg.DBFile); os.IsNotExist(err) {
		fmt.Printf("ℹ️  No seen database yet at %s (the scraper creates it on first run)\n", cfg.DBFile)
		return
	}

	store, err := seen.Open(cfg.DBFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to open seen database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	total, err := store.Count(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to read seen database: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seen listings: %d\n", total)

	entries, err := store.Recent(ctx, seenLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to read seen database: %v\n", err)
		os.Exit(1)
	}

	for _, e := range entries {
		fmt.Printf("- [%s] %s", e.Site, e.Title)
		if e.Price != "" {
			fmt.Printf(" | %s", e.Price)
		}
		fmt.Printf("\n  %s (first seen %s)\n", e.Link, e.FirstSeen)
	}
}

func init() {
	seenCmd.Flags().IntVarP(&seenLimit, "limit", "n", 10, "Number of recent listings to show")
}
