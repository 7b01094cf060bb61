package engine

import (
	"time"

	"github.com/viant/termsh/internal/clock"
)

// HistoryEntry records one submitted command line. Entries are immutable
// once appended.
type HistoryEntry struct {
	Command   string    `json:"command"`
	Timestamp time.Time `json:"timestamp"`
	Directory string    `json:"directory"`
}

// History is an append-only log of submitted commands. The log itself is
// unbounded; display windowing is the concern of the history built-in.
type History struct {
	entries []HistoryEntry
}

// Append records a command with the current time and the supplied directory.
func (h *History) Append(command, directory string) {
	h.entries = append(h.entries, HistoryEntry{
		Command:   command,
		Timestamp: clock.Now(),
		Directory: directory,
	})
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns up to n most recent entries, oldest first.
func (h *History) Last(n int) []HistoryEntry {
	if n <= 0 || len(h.entries) == 0 {
		return nil
	}
	start := len(h.entries) - n
	if start < 0 {
		start = 0
	}
	ret := make([]HistoryEntry, len(h.entries)-start)
	copy(ret, h.entries[start:])
	return ret
}

// Entries returns a copy of the full log.
func (h *History) Entries() []HistoryEntry {
	ret := make([]HistoryEntry, len(h.entries))
	copy(ret, h.entries)
	return ret
}
