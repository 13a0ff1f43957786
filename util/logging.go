package util

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func SetupJSONLogger(levelStr string, w io.Writer) {
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "level"

	log.Logger = zerolog.New(w).
		Level(GetLogLevelOrDebug(levelStr)).
		With().
		Timestamp().
		Logger()
}

func SetupDefaultLogger(levelStr string) {
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "level"

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(GetLogLevelOrDebug(levelStr)).
		With().
		Timestamp().
		Logger()
}

// SetupLogger picks the console or JSON logger by format name.
func SetupLogger(format string, levelStr string) {
	if strings.ToLower(format) == "json" {
		SetupJSONLogger(levelStr, os.Stderr)
		return
	}
	SetupDefaultLogger(levelStr)
}

func GetLogLevelOrDebug(levelStr string) zerolog.Level {
	levelStr = strings.ToLower(levelStr)
	if levelStr == "warning" {
		levelStr = "warn"
	}

	var level zerolog.Level

	err := level.UnmarshalText([]byte(levelStr))
	if err == nil {
		return level
	}

	log.Warn().Msgf("Unknown log level '%s', defaulting to debug", levelStr)
	return zerolog.DebugLevel
}
