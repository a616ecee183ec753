// Package logger provides logging functionality for the resource cleaner.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger writing one line per message.
type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

// Logf writes a formatted message with thread safety.
func (d *writerLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, format+"\n", args...)
}
