package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// consoleHandler renders records as single compact lines for terminals.
type consoleHandler struct {
	mu       *sync.Mutex
	writer   io.Writer
	level    slog.Leveler
	attrs    []slog.Attr
	groups   []string
	addSrc   bool
	levelTag map[slog.Level]string
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource bool) *consoleHandler {
	return &consoleHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
		addSrc: addSource,
		levelTag: map[slog.Level]string{
			slog.LevelDebug: "DBG",
			slog.LevelInfo:  "INF",
			slog.LevelWarn:  "WRN",
			slog.LevelError: "ERR",
		},
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	if !record.Time.IsZero() {
		b.WriteString(record.Time.Format("15:04:05"))
		b.WriteByte(' ')
	}
	tag, ok := h.levelTag[record.Level]
	if !ok {
		tag = record.Level.String()
	}
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(record.Message)

	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		writeAttr(&b, prefix, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, prefix, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, attr.Value.Resolve())
}
