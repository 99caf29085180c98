package app

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/config"
)

const redacted = "[redacted]"

// Telegram file and API URLs embed the bot token: .../bot<id>:<secret>/...
var botTokenInURL = regexp.MustCompile(`/bot\d+:[A-Za-z0-9_-]+`)

var secretKeys = map[string]bool{
	"authorization": true,
	"token":         true,
	"bot_token":     true,
	"api_key":       true,
	"jwt_secret":    true,
	"password":      true,
}

// NewLogger builds the process logger and installs it as slog's default.
// "json" is meant for production; "text" adds source locations for local runs.
// Records carry the environment name, and secrets are masked before output.
// A nil out writes to stderr.
func NewLogger(cfg config.LogConfig, environment string, out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}

	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: maskSecrets,
	}

	var h slog.Handler = slog.NewJSONHandler(out, opts)
	if text {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h)
	if environment != "" {
		logger = logger.With(slog.String("env", environment))
	}
	slog.SetDefault(logger)
	return logger
}

func maskSecrets(_ []string, a slog.Attr) slog.Attr {
	if secretKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); strings.Contains(s, "/bot") {
			return slog.String(a.Key, botTokenInURL.ReplaceAllString(s, "/bot"+redacted))
		}
	}
	return a
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
