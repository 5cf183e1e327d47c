// Package common holds small helpers shared across packages and tests.
package common

import (
	"context"
	"log/slog"
	"sync"
)

// SlogResetLevel sets the default slog level and returns a function that
// restores the previous level, pairs well with defer.
// Use like:
//
//	defer common.SlogResetLevel(slog.LevelWarn + 1)()
func SlogResetLevel(level slog.Level) (reset func()) {
	oldLevel := slog.SetLogLoggerLevel(level)
	return func() {
		slog.SetLogLoggerLevel(oldLevel)
	}
}

// SlogCapture swaps the default logger for one that records messages,
// returning the record sink and a restore function. Tests use it to assert
// on expected warnings without spamming output.
func SlogCapture() (records *SlogRecords, restore func()) {
	records = &SlogRecords{}
	old := slog.Default()
	slog.SetDefault(slog.New(records))
	return records, func() { slog.SetDefault(old) }
}

// SlogRecords is a slog.Handler that stores every record it sees.
type SlogRecords struct {
	mu      sync.Mutex
	Records []slog.Record
}

func (h *SlogRecords) Enabled(context.Context, slog.Level) bool { return true }

func (h *SlogRecords) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Records = append(h.Records, r)
	return nil
}

func (h *SlogRecords) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *SlogRecords) WithGroup(string) slog.Handler      { return h }

// Messages returns the recorded messages in order.
func (h *SlogRecords) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := make([]string, len(h.Records))
	for i, r := range h.Records {
		msgs[i] = r.Message
	}
	return msgs
}
