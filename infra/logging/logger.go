package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger は指定されたレベルとフォーマットで w に出力するロガーを生成します。
// level: "debug", "info", "warn", "error" (既定は "info")
// format: "json" または "text" (既定は "text")
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// InitLogger は標準エラー出力へのロガーを生成し、デフォルトロガーに設定します。
func InitLogger(level, format string) *slog.Logger {
	logger := NewLogger(os.Stderr, level, format)
	slog.SetDefault(logger)
	return logger
}
