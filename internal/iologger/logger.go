// Package iologger sets up the default slog logger.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnredlist/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "gnredlist.log"

// Init sets the default slog logger according to cfg. When destination is
// "file", the log file in logDir is truncated first.
func Init(logDir string, cfg config.LogConfig) error {
	var w io.Writer
	switch cfg.Destination {
	case "stdout":
		w = os.Stdout
	case "file":
		path := filepath.Join(logDir, LogFile)
		f, err := os.Create(path)
		if err != nil {
			return CreateLogFileError(path, err)
		}
		w = f
	default:
		w = os.Stderr
	}

	slog.SetDefault(slog.New(newHandler(w, cfg)))
	return nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	switch cfg.Format {
	case "text", "tint":
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
