// Package obslog is the ambient structured console logger shared by the
// pipeline and its collaborators. It follows the teacher repo's own
// DebugLogger idiom (doxx-NOLO/NOLO.go): timestamped, component-tagged
// console lines plus a bounded in-memory ring for anything that wants
// to display recent activity (e.g. a terminal overlay), rather than a
// third-party structured logging library — none of the retrieved
// example repos pull one in.
package obslog

import (
	"fmt"
	"sync"
	"time"
)

// Message is one recorded log line.
type Message struct {
	Timestamp time.Time
	Component string
	Text      string
}

const maxHistory = 100

// Logger is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	enabled bool
	history []Message
}

// New returns a Logger. When enabled is false, Printf still records to
// the in-memory ring (so an operator overlay keeps working) but skips
// the console write, mirroring the teacher's debugMsg behavior.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled}
}

// Printf logs component-tagged, timestamped text.
func (l *Logger) Printf(component, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	now := time.Now()

	l.mu.Lock()
	l.history = append(l.history, Message{Timestamp: now, Component: component, Text: text})
	if len(l.history) > maxHistory {
		l.history = l.history[1:]
	}
	l.mu.Unlock()

	if l.enabled {
		fmt.Printf("[%s][%s] %s\n", now.Format("15:04:05.000"), component, text)
	}
}

// Degenerate records a NumericDegenerate event (spec.md §7): some
// guarded trig operation received a non-finite input and was forced to
// zero. This is the observability hook geometry.DegenerateHook wires to.
func (l *Logger) Degenerate(quantity string) {
	l.Printf("NUMERIC_DEGENERATE", "%s forced to 0 (non-finite input)", quantity)
}

// Recent returns a copy of the most recent log messages, oldest first.
func (l *Logger) Recent() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.history))
	copy(out, l.history)
	return out
}
