package logging

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

var levelMap = map[string]levels.Level{
	"debug":   levels.LevelDebug,
	"info":    levels.LevelInfo,
	"warning": levels.LevelWarning,
	"warn":    levels.LevelWarning,
	"error":   levels.LevelError,
	"fatal":   levels.LevelFatal,
}

// ParseLevel maps a configured level name to a gologger level.
func ParseLevel(logLevel string) (levels.Level, bool) {
	level, ok := levelMap[strings.ToLower(logLevel)]
	return level, ok
}

// Setup configures gologger based on the log level
func Setup(logLevel string) {
	level, ok := ParseLevel(logLevel)
	if !ok {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelInfo)
		gologger.Warning().Msgf("Unknown log level '%s', defaulting to 'info'", logLevel)
		return
	}
	gologger.DefaultLogger.SetMaxLevel(level)
	gologger.Debug().Msgf("Log level configured to: %s", logLevel)
}

// Silence suppresses regular log output so stdout stays machine readable.
func Silence() {
	gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
}
