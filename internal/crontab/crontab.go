// Package crontab reads and writes the user's crontab and edits the
// sentinel-delimited block this tool owns inside it. Block editing is pure
// text manipulation so it can be tested without touching the real crontab.
package crontab

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Table is the user's periodic-task table. The system implementation shells
// out to crontab(1); tests inject a fake.
type Table interface {
	// Read returns the full table text. ErrNoTable means the user has no
	// crontab installed at all, which is a valid empty state.
	Read() (string, error)
	// Write replaces the full table with content.
	Write(content string) error
}

// ErrNoTable is returned by Read when the user has no crontab installed.
var ErrNoTable = errors.New("no crontab for user")

// System accesses the real crontab via the crontab binary.
type System struct{}

func (System) Read() (string, error) {
	out, err := exec.Command("crontab", "-l").Output()
	if err != nil {
		// crontab -l exits non-zero when the user has no table yet.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", ErrNoTable
		}
		return "", fmt.Errorf("crontab -l: %w", err)
	}
	return string(out), nil
}

func (System) Write(content string) error {
	cmd := exec.Command("crontab", "-")
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("crontab -: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
