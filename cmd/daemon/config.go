package main

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// daemonConfig holds the host-process settings that SPEC_FULL.md §2.2
// keeps out of the engine package entirely: bus identity, logging, and
// which method/shortcut set a fresh session starts with. It is
// populated from the environment, with an optional .env file loaded
// first if one is present in the working directory.
type daemonConfig struct {
	ServiceName         string
	Method              string
	UseDefaultShortcuts bool
	LogLevel            zerolog.Level
	LogPretty           bool
}

// loadDaemonConfig reads IME_* environment variables, loading a local
// .env file first when present (github.com/joho/godotenv). Missing
// variables fall back to sane defaults rather than failing startup.
func loadDaemonConfig() *daemonConfig {
	_ = godotenv.Load()

	cfg := &daemonConfig{
		ServiceName:         "org.gonhanh.ime.Core",
		Method:              "Telex",
		UseDefaultShortcuts: false,
		LogLevel:            zerolog.InfoLevel,
		LogPretty:           true,
	}

	if v := os.Getenv("IME_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("IME_METHOD"); v != "" {
		cfg.Method = v
	}
	if v := strings.ToLower(os.Getenv("IME_DEFAULT_SHORTCUTS")); v == "1" || v == "true" {
		cfg.UseDefaultShortcuts = true
	}
	if v := os.Getenv("IME_LOG_LEVEL"); v != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := strings.ToLower(os.Getenv("IME_LOG_JSON")); v == "1" || v == "true" {
		cfg.LogPretty = false
	}
	return cfg
}

// newLogger builds the process-wide logger per cfg. Interactive runs
// default to zerolog's human-readable console writer; setting
// IME_LOG_JSON switches to plain JSON lines for a service manager that
// collects structured logs.
func newLogger(cfg *daemonConfig) zerolog.Logger {
	var w zerolog.ConsoleWriter
	var logger zerolog.Logger
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(cfg.LogLevel).With().Timestamp().Logger()
}
