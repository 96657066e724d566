package main

import (
	"log/slog"
	"os"
	"strings"
)

// config holds the environment-driven settings of the CLI. The orthosnap
// binary override (ORTHOSNAP_BIN) is read by the orthosnap package itself.
type config struct {
	LogFile  string
	LogLevel slog.Level
}

func loadConfig() config {
	return config{
		LogFile:  getEnv("ORTHOSNAP_WF_LOG_FILE", ""),
		LogLevel: parseLogLevel(getEnv("ORTHOSNAP_WF_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
