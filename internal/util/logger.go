package util

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     zerolog.Logger
	loggerOnce sync.Once
)

// InitLogger configures the shared zerolog logger. Console writer in debug
// mode so local output stays readable, JSON otherwise.
func InitLogger(level, ginMode string) {
	loggerOnce.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		if ginMode == "debug" || ginMode == "" {
			out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
			logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
			return
		}
		logger = zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	})
}

// Log returns the shared logger. Safe to call before InitLogger in tests.
func Log() *zerolog.Logger {
	loggerOnce.Do(func() {
		logger = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	})
	return &logger
}

// LogEvent prints a standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Log().Info().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}
