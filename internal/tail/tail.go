// Package tail prints the end of the scraper log and follows new appends.
package tail

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback poll cadence for filesystems where fsnotify
// misses write events.
const pollInterval = 2 * time.Second

// Follow writes the last n lines of the file at path to w, then streams newly
// appended data until ctx is cancelled. The file is created empty if absent.
// Truncation (e.g. the user rotating the log by hand) restarts from offset 0.
func Follow(ctx context.Context, path string, n int, w io.Writer) error {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	offset, err := lastLines(f, n, w)
	f.Close()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: the scraper may recreate the log.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if offset, err = drain(path, offset, w); err != nil {
				return err
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Keep following; the poll ticker covers missed events.
		case <-ticker.C:
			if offset, err = drain(path, offset, w); err != nil {
				return err
			}
		}
	}
}

// lastLines writes the final n lines of f to w and returns the end offset.
func lastLines(f *os.File, n int, w io.Writer) (int64, error) {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ring := make([]string, 0, n)
	for scanner.Scan() {
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	for _, line := range ring {
		fmt.Fprintln(w, line)
	}

	return f.Seek(0, io.SeekEnd)
}

// drain copies bytes appended past offset to w and returns the new offset.
// A file shorter than offset was truncated or replaced; reread from the start.
func drain(path string, offset int64, w io.Writer) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return offset, err
	}

	if info.Size() < offset {
		offset = 0
	}
	if info.Size() == offset {
		return offset, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return offset, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, err
	}
	copied, err := io.Copy(w, f)
	if err != nil {
		return offset, err
	}
	return offset + copied, nil
}
