package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"autowatch/internal/job"
)

var runNowCmd = &cobra.Command{
	Use:   "run_now",
	Short: "Run the scraper once in the foreground",
	Long: `Validate that the scraper is runnable, then execute it synchronously.
Output goes to the terminal, not the log file, and the scraper's exit status
becomes this command's exit status.`,
	Args: cobra.NoArgs,
	Run:  runNow,
}

func runNow(cmd *cobra.Command, args []string) {
	cfg := mustConfig()
	entry := job.FromConfig(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := entry.Run(ctx); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "❌ Run failed: %v\n", err)
		os.Exit(1)
	}
}
