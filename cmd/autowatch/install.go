package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autowatch/internal/crontab"
	"autowatch/internal/job"
	"autowatch/internal/logger"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the scheduled scraper entry into the crontab",
	Long: `Validate that the scraper is runnable, then write the managed crontab block.
Any previous managed block is replaced, so repeated installs keep exactly one entry.`,
	Args: cobra.NoArgs,
	Run:  runInstall,
}

func runInstall(cmd *cobra.Command, args []string) {
	cfg := mustConfig()
	log := mustLogger()
	entry := job.FromConfig(cfg)

	if err := job.Install(crontab.System{}, entry); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Install failed: %v\n", err)
		os.Exit(1)
	}

	log.Info("cron entry installed",
		logger.Field{Key: "schedule", Value: entry.Schedule},
		logger.Field{Key: "script", Value: entry.Script},
		logger.Field{Key: "log", Value: entry.LogFile})
	fmt.Printf("✅ Installed: %s\n", entry.Line())
}
