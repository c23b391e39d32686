package logging

import (
	"context"
	"log/slog"

	"github.com/donationDB/Donation-Web/internal/metrics"
)

// Sink is a secondary log destination, such as the system_logs table.
type Sink struct {
	Name    string
	Handler slog.Handler
}

// MultiHandler writes records to the process log and copies them to every
// sink that accepts their level. Only a process-log failure fails a record;
// sink failures are counted per sink and dropped.
type MultiHandler struct {
	process slog.Handler
	sinks   []Sink
}

func NewMultiHandler(process slog.Handler, sinks ...Sink) *MultiHandler {
	return &MultiHandler{process: process, sinks: sinks}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if m.process.Enabled(ctx, level) {
		return true
	}
	for _, s := range m.sinks {
		if s.Handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, s := range m.sinks {
		if !s.Handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := s.Handler.Handle(ctx, record.Clone()); err != nil {
			metrics.LogSinkFailures.WithLabelValues(s.Name).Inc()
		}
	}
	if !m.process.Enabled(ctx, record.Level) {
		return nil
	}
	return m.process.Handle(ctx, record)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	sinks := make([]Sink, len(m.sinks))
	for i, s := range m.sinks {
		sinks[i] = Sink{Name: s.Name, Handler: fn(s.Handler)}
	}
	return &MultiHandler{process: fn(m.process), sinks: sinks}
}
