package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autowatch/internal/job"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and validate the resolved configuration",
	Long:  `Print the configuration resolved from the .env file and validate the cron schedule.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()

		fmt.Printf("CRON_SCHEDULE: %s\n", cfg.CronSchedule)
		fmt.Printf("PYTHON_BIN:    %s\n", cfg.PythonBin)
		fmt.Printf("SCRIPT_PATH:   %s\n", cfg.ScriptPath)
		fmt.Printf("LOG_FILE:      %s\n", cfg.LogFile)
		fmt.Printf("DB_FILE:       %s\n", cfg.DBFile)

		if err := job.ValidateSchedule(cfg.CronSchedule); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Configuration invalid: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✅ Configuration is valid")
	},
}
