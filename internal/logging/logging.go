package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Logger is a deliberately small, framework-agnostic logging interface.
// Keep implementations in this package so callers can swap in any logger.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning.
	Warn(msg string, fields ...Field)

	// Error logs an error.
	Error(msg string, fields ...Field)

	// With returns a child logger with persistent fields.
	With(fields ...Field) Logger
}

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value interface{}
}

// StreamLogger is a tiny, structured logger. It implements Logger and prints
// JSON lines to the writer it was constructed with (stderr by default, so log
// lines never interleave with the plain progress output on stdout).
type StreamLogger struct {
	w         io.Writer
	component string
	verbose   bool
}

// NewStderrLogger creates a StreamLogger writing to stderr. component is
// optional and is carried as a persistent field. Debug lines are dropped
// unless verbose is set.
func NewStderrLogger(component string, verbose bool) *StreamLogger {
	return &StreamLogger{w: os.Stderr, component: component, verbose: verbose}
}

// NewStreamLogger creates a StreamLogger writing to an arbitrary writer.
// Useful in tests that want to inspect the emitted lines.
func NewStreamLogger(w io.Writer, component string, verbose bool) *StreamLogger {
	return &StreamLogger{w: w, component: component, verbose: verbose}
}

func (s *StreamLogger) log(level string, msg string, fields ...Field) {
	type outEntry struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}
	m := make(map[string]any)
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	entry := outEntry{
		Level:     level,
		Msg:       msg,
		Component: s.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	}
	enc, err := json.Marshal(entry)
	if err != nil {
		// Fallback simple formatting if JSON marshal fails
		fmt.Fprintf(s.w, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(s.w, string(enc))
}

func (s *StreamLogger) Debug(msg string, fields ...Field) {
	if s.verbose {
		s.log("debug", msg, fields...)
	}
}

func (s *StreamLogger) Info(msg string, fields ...Field) {
	s.log("info", msg, fields...)
}

func (s *StreamLogger) Warn(msg string, fields ...Field) {
	s.log("warn", msg, fields...)
}

func (s *StreamLogger) Error(msg string, fields ...Field) {
	s.log("error", msg, fields...)
}

func (s *StreamLogger) With(fields ...Field) Logger {
	// create a child logger with component appended (simple implementation)
	child := &StreamLogger{w: s.w, component: s.component, verbose: s.verbose}
	// If fields include a component key, prefer that as the component name
	for _, f := range fields {
		if f.Key == "component" {
			if str, ok := f.Value.(string); ok {
				child.component = str
			}
		}
	}
	return child
}
