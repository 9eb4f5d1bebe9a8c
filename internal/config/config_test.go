package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the keys this package reads so file values and defaults are
// exercised deterministically. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CRON_SCHEDULE", "PYTHON_BIN", "SCRIPT_PATH", "LOG_FILE", "DB_FILE"} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSchedule, cfg.CronSchedule)
	assert.True(t, filepath.IsAbs(cfg.ScriptPath))
	assert.Equal(t, "monitor_autos.py", filepath.Base(cfg.ScriptPath))
	assert.Equal(t, "monitor_autos.log", filepath.Base(cfg.LogFile))
	assert.Equal(t, "seen_links.db", filepath.Base(cfg.DBFile))
}

func TestLoadScheduleFromFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "CRON_SCHEDULE=30 2 * * *\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "30 2 * * *", cfg.CronSchedule)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "# scraper config\n\nCRON_SCHEDULE=15 3 * * *\nnot-a-pair\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "15 3 * * *", cfg.CronSchedule)
}

func TestLoadEmptyValueFallsBack(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "CRON_SCHEDULE=\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultSchedule, cfg.CronSchedule)
}

func TestLoadAbsolutizesPaths(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "SCRIPT_PATH=scripts/monitor_autos.py\nLOG_FILE=logs/run.log\nDB_FILE=data/seen.db\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.ScriptPath))
	assert.True(t, filepath.IsAbs(cfg.LogFile))
	assert.True(t, filepath.IsAbs(cfg.DBFile))
}

func TestLoadKeepsAbsolutePaths(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "PYTHON_BIN=/opt/venv/bin/python3\nSCRIPT_PATH=/srv/monitor_autos.py\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/opt/venv/bin/python3", cfg.PythonBin)
	assert.Equal(t, "/srv/monitor_autos.py", cfg.ScriptPath)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "  CRON_SCHEDULE =  45 1 * * *  \n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "45 1 * * *", cfg.CronSchedule)
}
