// Package zlog holds the global Zerolog instance used as the default
// diagnostic stream for timed calls.
package zlog

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global logger instance. It writes JSON records to stderr
// until one of the Init functions replaces it.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init initializes the global logger with JSON output to stderr.
func Init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// InitConsole initializes the global logger with a human-readable,
// colored ConsoleWriter on stdout.
func InitConsole() {
	Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().
		Timestamp().
		Logger().
		Level(zerolog.TraceLevel)
}

// InitFile initializes the global logger with rotated file output.
// MaxSize is in megabytes, maxAge in days.
func InitFile(filename string, maxSize, maxBackups, maxAge int) {
	Logger = zerolog.New(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}).With().Timestamp().Logger()
}

// SetLevel sets the logging level of the global Logger.
//
// Accepted values: "trace", "debug", "info", "warn", "error",
// "fatal", "panic".
func SetLevel(logLevelStr string) error {
	logLevel, err := zerolog.ParseLevel(logLevelStr)
	if err != nil {
		return err
	}

	Logger = Logger.Level(logLevel)

	return nil
}
