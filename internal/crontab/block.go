package crontab

import "strings"

// Sentinel markers delimiting the managed block. Everything between them,
// inclusive, belongs to this tool; all other lines are never touched.
const (
	BeginMarker = "# --- autowatch-auto BEGIN ---"
	EndMarker   = "# --- autowatch-auto END ---"
)

// Block renders the managed block for the given crontab line.
func Block(line string) string {
	return BeginMarker + "\n" + line + "\n" + EndMarker + "\n"
}

// RemoveBlock deletes the sentinel-delimited range from table, inclusive,
// and reports whether a block was found. Lines outside the markers pass
// through byte-identical. A block missing its end marker is dropped through
// the end of the table rather than left dangling.
func RemoveBlock(table string) (string, bool) {
	// The trailing newline is a terminator, not part of any block; set it
	// aside so a damaged block cannot swallow it.
	trailingNewline := strings.HasSuffix(table, "\n")
	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	out := make([]string, 0, len(lines))
	removed := false
	skipping := false

	for _, line := range lines {
		switch {
		case !skipping && strings.TrimSpace(line) == BeginMarker:
			skipping = true
			removed = true
		case skipping && strings.TrimSpace(line) == EndMarker:
			skipping = false
		case !skipping:
			out = append(out, line)
		}
	}

	result := strings.Join(out, "\n")
	if trailingNewline && result != "" {
		result += "\n"
	}
	return result, removed
}

// FindBlock extracts the managed block from table, markers included.
func FindBlock(table string) (string, bool) {
	lines := strings.Split(table, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == BeginMarker {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	for j := start + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == EndMarker {
			return strings.Join(lines[start:j+1], "\n"), true
		}
	}
	return strings.Join(lines[start:], "\n"), true
}

// Upsert removes any existing managed block from table and appends a fresh
// one for line. Repeated calls always leave exactly one block.
func Upsert(table, line string) string {
	out, _ := RemoveBlock(table)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + Block(line)
}
