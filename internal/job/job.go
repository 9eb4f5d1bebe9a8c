// Package job models the scheduled scraper entry: the crontab line that runs
// the scraper, the prerequisite checks guarding it, and the operations that
// install, remove and inspect it.
package job

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"autowatch/internal/config"
	"autowatch/internal/crontab"
)

// Entry describes the scraper invocation to schedule. All paths are absolute.
type Entry struct {
	Schedule    string
	Interpreter string
	Script      string
	LogFile     string
}

// FromConfig builds the Entry from resolved configuration.
func FromConfig(cfg *config.Config) Entry {
	return Entry{
		Schedule:    cfg.CronSchedule,
		Interpreter: cfg.PythonBin,
		Script:      cfg.ScriptPath,
		LogFile:     cfg.LogFile,
	}
}

// Line renders the crontab line: schedule, interpreter, script, and output
// redirected (appending) into the log file.
func (e Entry) Line() string {
	return fmt.Sprintf("%s %s %s >> %s 2>&1", e.Schedule, e.Interpreter, e.Script, e.LogFile)
}

// ValidateSchedule checks expr against the standard five-field cron format.
func ValidateSchedule(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// NextRun returns the first activation of the schedule after now.
func NextRun(expr string, now time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return sched.Next(now), nil
}

// ScheduleFromLine recovers the five-field schedule from a managed crontab line.
func ScheduleFromLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return "", false
	}
	return strings.Join(fields[:5], " "), true
}

// EnsurePaths verifies the scraper is runnable: the interpreter must be an
// executable file and the script a regular file. Nothing is mutated on failure.
func (e Entry) EnsurePaths() error {
	info, err := os.Stat(e.Interpreter)
	if err != nil {
		return fmt.Errorf("interpreter %s: %w", e.Interpreter, err)
	}
	if info.IsDir() || info.Mode()&0111 == 0 {
		return fmt.Errorf("interpreter %s is not an executable file", e.Interpreter)
	}

	scriptInfo, err := os.Stat(e.Script)
	if err != nil {
		return fmt.Errorf("scraper script %s: %w", e.Script, err)
	}
	if !scriptInfo.Mode().IsRegular() {
		return fmt.Errorf("scraper script %s is not a regular file", e.Script)
	}

	return nil
}

// EnsureLogFile makes sure the log file exists so tail has something to open.
// Best-effort: cron creates it on first run anyway.
func (e Entry) EnsureLogFile() {
	f, err := os.OpenFile(e.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.Close()
	}
}

// Install validates the entry and replaces the managed block in the table.
// Repeated installs leave exactly one block. The table is not touched when
// validation fails.
func Install(t crontab.Table, e Entry) error {
	if err := ValidateSchedule(e.Schedule); err != nil {
		return err
	}
	if err := e.EnsurePaths(); err != nil {
		return err
	}
	e.EnsureLogFile()

	table, err := t.Read()
	if errors.Is(err, crontab.ErrNoTable) {
		table = ""
	} else if err != nil {
		return err
	}

	return t.Write(crontab.Upsert(table, e.Line()))
}

// Remove strips the managed block from the table. An absent table or absent
// block is a successful no-op; removed reports whether anything changed.
func Remove(t crontab.Table) (removed bool, err error) {
	table, err := t.Read()
	if errors.Is(err, crontab.ErrNoTable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	out, removed := crontab.RemoveBlock(table)
	if !removed {
		return false, nil
	}
	return true, t.Write(out)
}

// Status reads the table without mutation and extracts the managed block.
func Status(t crontab.Table) (block string, found bool, err error) {
	table, err := t.Read()
	if errors.Is(err, crontab.ErrNoTable) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	block, found = crontab.FindBlock(table)
	return block, found, nil
}

// Run executes the scraper synchronously in the foreground with the caller's
// standard streams. The scraper's exit status is returned as *exec.ExitError.
func (e Entry) Run(ctx context.Context) error {
	if err := e.EnsurePaths(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, e.Interpreter, e.Script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
