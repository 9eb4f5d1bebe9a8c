package main

import (
	"fmt"
	"os"

	"autowatch/internal/config"
	"autowatch/internal/logger"
)

// mustConfig loads the .env configuration or exits.
func mustConfig() *config.Config {
	cfg, err := config.Load(envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustLogger initializes a minimal text logger for operational records or
// exits. Records go to stderr so stdout stays reserved for command output.
func mustLogger() *logger.Logger {
	log, err := logger.New(logger.Config{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return log
}
