package ui

import (
	"fmt"
	"strings"
	"sync"
)

// logBuffer keeps the newest lines of a followed log file.
type logBuffer struct {
	mu    sync.Mutex
	max   int
	lines []string
	total int
}

func newLogBuffer(max int) *logBuffer {
	return &logBuffer{max: max}
}

// Append adds a line, dropping the oldest once the buffer is full.
func (b *logBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.total++
	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

// Lines returns a copy of the kept lines, oldest first.
func (b *logBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// Total is how many lines were ever appended.
func (b *logBuffer) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

// Text joins the kept lines.
func (b *logBuffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Search returns the kept lines containing query, case-insensitively, with a
// match summary. An empty query returns all kept lines.
func (b *logBuffer) Search(query string) string {
	lines := b.Lines()
	if query == "" {
		return strings.Join(lines, "\n")
	}

	var filtered []string
	queryLower := strings.ToLower(query)
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), queryLower) {
			filtered = append(filtered, line)
		}
	}

	if len(filtered) == 0 {
		return fmt.Sprintf("No results found for: %s\n(Searching only in loaded lines)", query)
	}
	return strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered))
}
