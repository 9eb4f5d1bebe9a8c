package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"autowatch/internal/tail"
)

// tailLines is how many trailing log lines are printed before following.
const tailLines = 100

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follow the scraper log",
	Long:  `Print the last 100 lines of the scraper log and follow new output until interrupted.`,
	Args:  cobra.NoArgs,
	Run:   runTail,
}

func runTail(cmd *cobra.Command, args []string) {
	cfg := mustConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tail.Follow(ctx, cfg.LogFile, tailLines, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Tail failed: %v\n", err)
		os.Exit(1)
	}
}
