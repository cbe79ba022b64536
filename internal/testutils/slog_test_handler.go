package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is one captured record flattened to key/value pairs. The record's
// level and message are stored under "level" and "message".
type LogEntry map[string]any

// logSink is shared by a handler and every handler derived from it.
type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestSlogHandler captures records in memory. Attributes bound with
// Logger.With are kept, so request-scoped fields such as trace_id can be
// asserted on.
type TestSlogHandler struct {
	sink  *logSink
	attrs []slog.Attr
}

// NewTestSlogHandler returns an empty capturing handler.
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{sink: &logSink{}}
}

// Enabled implements slog.Handler; every level is captured.
func (h *TestSlogHandler) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, a := range h.attrs {
		entry[a.Key] = a.Value.Resolve().Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Resolve().Any()
		return true
	})

	h.sink.mu.Lock()
	h.sink.entries = append(h.sink.entries, entry)
	h.sink.mu.Unlock()
	return nil
}

// WithAttrs implements slog.Handler.
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TestSlogHandler{sink: h.sink, attrs: merged}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *TestSlogHandler) WithGroup(string) slog.Handler { return h }

// Entries returns a copy of everything captured so far.
func (h *TestSlogHandler) Entries() []LogEntry {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	return append([]LogEntry(nil), h.sink.entries...)
}

// Find returns the first captured entry with the given message.
func (h *TestSlogHandler) Find(message string) (LogEntry, bool) {
	for _, entry := range h.Entries() {
		if entry["message"] == message {
			return entry, true
		}
	}
	return nil, false
}
