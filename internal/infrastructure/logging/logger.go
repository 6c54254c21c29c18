package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/infrastructure/config"
)

// Logger implements common.ContainerLogger on top of log/slog
type Logger struct {
	slog *slog.Logger
}

// New builds a logger writing to w in the given format ("text" or "json")
// and dropping entries below level
func New(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return &Logger{slog: slog.New(handler)}, nil
}

// NewFromConfig builds the process logger. The returned closer releases the
// log file when output is "file".
func NewFromConfig(cfg config.LoggingConfig) (*Logger, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer = io.NopCloser(nil)
	)
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	default:
		return nil, nil, fmt.Errorf("unknown log output %q", cfg.Output)
	}

	logger, err := New(w, cfg.Level, cfg.Format)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}

// Log writes one entry. Metadata keys are emitted in sorted order.
func (l *Logger) Log(level, message string, metadata map[string]interface{}) {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	ctx := context.Background()
	if !l.slog.Enabled(ctx, lvl) {
		return
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	l.slog.LogAttrs(ctx, lvl, message, attrs...)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case common.LevelDebug:
		return slog.LevelDebug, nil
	case common.LevelInfo, "":
		return slog.LevelInfo, nil
	case common.LevelWarn, "WARNING":
		return slog.LevelWarn, nil
	case common.LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
