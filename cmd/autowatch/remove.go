package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autowatch/internal/crontab"
	"autowatch/internal/job"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the scheduled scraper entry from the crontab",
	Long:  `Strip the managed block from the crontab. Absent crontab or block is a no-op.`,
	Args:  cobra.NoArgs,
	Run:   runRemove,
}

func runRemove(cmd *cobra.Command, args []string) {
	log := mustLogger()

	removed, err := job.Remove(crontab.System{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Remove failed: %v\n", err)
		os.Exit(1)
	}

	if !removed {
		fmt.Println("ℹ️  No managed cron entry found, nothing to remove")
		return
	}

	log.Info("cron entry removed")
	fmt.Println("✅ Cron entry removed")
}
