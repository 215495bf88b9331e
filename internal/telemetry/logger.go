// Package telemetry is the log/trace sink spec.md treats as an opaque
// external collaborator: a centralized, component- and level-filtered
// logger that the CPU core writes textual debug lines to. It has no
// semantic effect on emulation.
package telemetry

import (
	"fmt"
	"io"
	"sync"
)

// Logger is a fixed-size ring buffer of log entries, filtered by a minimum
// level before being appended. Unlike a channel-fed logger built for a
// real-time loop racing a display, Logger appends synchronously: the CPU
// core this package serves is single-threaded and run-to-completion per
// step (spec.md §5), so there is no producer/consumer boundary to decouple.
type Logger struct {
	mu       sync.Mutex
	entries  []Entry
	cap      int
	minLevel Level
}

// NewLogger creates a logger retaining at most cap entries (oldest
// discarded first).
func NewLogger(cap int) *Logger {
	if cap <= 0 {
		cap = 1
	}
	return &Logger{
		cap:      cap,
		minLevel: LevelInfo,
	}
}

// SetLevel sets the most verbose level that will be recorded.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Log records an entry if level is no more verbose than the logger's level
// (with the level set to LevelWarn, LevelError entries are kept and
// LevelDebug entries are dropped).
func (l *Logger) Log(component Component, level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level > l.minLevel {
		return
	}

	entry := Entry{
		Component: component,
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
	}
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Clear empties the buffer.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Write dumps every buffered entry to w, one per line.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	entries := append([]Entry(nil), l.entries...)
	l.mu.Unlock()

	for _, e := range entries {
		fmt.Fprintln(w, e.Format())
	}
}

// Tail dumps the last n entries to w, one per line. Asking for more entries
// than are buffered is not an error; asking for zero writes nothing.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	entries := append([]Entry(nil), l.entries...)
	l.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	for _, e := range entries[len(entries)-n:] {
		fmt.Fprintln(w, e.Format())
	}
}
