// Package config resolves the tool's configuration from the scraper's flat
// KEY=VALUE .env file. The file is shared with the Python scraper, so only the
// keys this tool consumes are modeled here; unknown keys are loaded into the
// environment untouched.
package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultEnvPath is the default path to the .env file.
const DefaultEnvPath = "./.env"

// DefaultSchedule is the cron schedule used when CRON_SCHEDULE is absent or empty.
const DefaultSchedule = "0 */6 * * *"

// Config holds the resolved settings consumed by the CLI. All paths are absolute.
type Config struct {
	CronSchedule string // CRON_SCHEDULE
	PythonBin    string // PYTHON_BIN
	ScriptPath   string // SCRIPT_PATH
	LogFile      string // LOG_FILE
	DBFile       string // DB_FILE
}

// Load reads the .env file at path (if it exists), merges it into the process
// environment, and resolves the Config with defaults for absent keys. A missing
// file is not an error; every key has a default.
func Load(path string) (*Config, error) {
	if err := loadEnvOptional(path); err != nil {
		return nil, err
	}

	cfg := &Config{
		CronSchedule: getEnv("CRON_SCHEDULE", DefaultSchedule),
		PythonBin:    getEnv("PYTHON_BIN", defaultPython()),
		ScriptPath:   absolutize(getEnv("SCRIPT_PATH", "monitor_autos.py")),
		LogFile:      absolutize(getEnv("LOG_FILE", "monitor_autos.log")),
		DBFile:       absolutize(getEnv("DB_FILE", "seen_links.db")),
	}
	return cfg, nil
}

// loadEnv parses KEY=VALUE lines from path and sets them as environment
// variables. Blank lines and lines starting with # are skipped, as are lines
// without a = separator.
func loadEnv(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key != "" {
			os.Setenv(key, value)
		}
	}

	return nil
}

// loadEnvOptional is loadEnv, except a missing file is not an error.
func loadEnvOptional(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return loadEnv(path)
}

// getEnv returns the environment value for name, or fallback when unset or empty.
func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// defaultPython resolves python3 from PATH so the crontab line carries an
// absolute path (cron runs with a minimal PATH of its own).
func defaultPython() string {
	if p, err := exec.LookPath("python3"); err == nil {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	return "/usr/bin/python3"
}

func absolutize(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
