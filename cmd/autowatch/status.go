package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"autowatch/internal/crontab"
	"autowatch/internal/job"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the scraper is scheduled",
	Long:  `Print the managed crontab block and the next scheduled run, if installed.`,
	Args:  cobra.NoArgs,
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	block, found, err := job.Status(crontab.System{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to read crontab: %v\n", err)
		os.Exit(1)
	}

	if !found {
		fmt.Println("ℹ️  No managed cron entry installed")
		return
	}

	fmt.Println("✅ Cron entry installed:")
	fmt.Println(block)

	// Preview the next activation from the installed line, not from config,
	// so status reflects what cron will actually do.
	if schedule, ok := scheduleFromBlock(block); ok {
		if next, err := job.NextRun(schedule, time.Now()); err == nil {
			fmt.Printf("Next run: %s\n", next.Format(time.RFC1123))
		}
	}
}

// scheduleFromBlock extracts the five-field schedule from the managed block's
// entry line (the line between the sentinel markers).
func scheduleFromBlock(block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == crontab.BeginMarker || line == crontab.EndMarker {
			continue
		}
		return job.ScheduleFromLine(line)
	}
	return "", false
}
