package main

import (
	"github.com/spf13/cobra"

	"autowatch/internal/config"
)

// envPath is the path to the scraper's .env file, shared by all subcommands.
var envPath string

// rootCmd represents the base command. Called without a subcommand it behaves
// like status.
var rootCmd = &cobra.Command{
	Use:   "autowatch",
	Short: "Autowatch - crontab control for the car-search scraper",
	Long: `Autowatch installs, removes, inspects and manually triggers the scheduled
run of the monitor_autos.py scraper via the user's crontab. The scraper itself
is an external script; this tool only manages its single crontab entry and log.`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run:     runStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envPath, "config", "c", config.DefaultEnvPath, "Path to the .env configuration file")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(runNowCmd)
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(seenCmd)
	rootCmd.AddCommand(configCmd)
}
